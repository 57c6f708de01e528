package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/airsim-events/catalog"
	"github.com/QuangTung97/airsim-events/config"
	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/memtable"
	"github.com/QuangTung97/airsim-events/repository"
	"github.com/QuangTung97/airsim-events/service/event"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchCreateCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchOptions struct {
	worldID     int64
	numThreads  int
	numElements int
}

func newService(conf config.Config) *event.Service {
	db := conf.MySQL.MustConnect(zap.NewNop())
	provider := repository.NewProvider(db)

	return event.NewService(provider, repository.NewEvent(), repository.NewModifier(), catalog.Default(),
		event.WithDeltaWindow(conf.Engine.DeltaWindow),
		event.WithSeqHeadCache(memtable.New(conf.Engine.HeadCacheSize, conf.Engine.HeadCacheTTL)),
	)
}

func benchCreate(opts benchOptions) {
	conf := config.Load()
	service := newService(conf)

	ctx := context.Background()

	startSeq := int64(0)
	latest, err := service.List(ctx, opts.worldID, nil, 1)
	if err != nil {
		panic(err)
	}
	if latest.NextAfterSeq != nil {
		startSeq = *latest.NextAfterSeq
	}
	fmt.Println("WORLD:", opts.worldID, "START SEQ:", startSeq)

	durations := make([][]time.Duration, opts.numThreads)
	created := make([][]string, opts.numThreads)

	payload := json.RawMessage(`{"factor": 1.05, "ttlHours": 1, "reason": "bench"}`)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(opts.numThreads)
	for th := 0; th < opts.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < opts.numElements; i++ {
				start := time.Now()
				result, err := service.Create(ctx, opts.worldID, catalog.FuelShock.ID(), payload)
				if err != nil {
					fmt.Println("CREATE ERROR:", err)
					continue
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
				created[threadIndex] = append(created[threadIndex], result.Instance.ID)
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	printLatencies(durations)

	expected := make(map[string]struct{})
	for _, ids := range created {
		for _, id := range ids {
			expected[id] = struct{}{}
		}
	}
	replay(ctx, service, opts.worldID, startSeq, expected)
}

func printLatencies(durations [][]time.Duration) {
	history := make([]time.Duration, 0)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	if len(history) == 0 {
		fmt.Println("NO SUCCESSFUL REQUESTS")
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := len(history)
	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

// replay pages through the feed after startSeq and checks that every created
// instance shows up exactly once with strictly increasing seq
func replay(
	ctx context.Context, service *event.Service, worldID int64, startSeq int64, expected map[string]struct{},
) {
	seen := make(map[string]struct{}, len(expected))
	cursor := startSeq
	numPages := 0
	violations := 0

	for {
		page, err := service.List(ctx, worldID, &cursor, event.MaxListLimit)
		if err != nil {
			panic(err)
		}
		if len(page.Data) == 0 {
			break
		}
		numPages++

		for _, instance := range page.Data {
			violations += checkInstance(instance, cursor, seen)
			cursor = instance.Seq
		}
	}

	missing := 0
	for id := range expected {
		if _, ok := seen[id]; !ok {
			missing++
		}
	}

	fmt.Println("REPLAY PAGES:", numPages)
	fmt.Println("REPLAY ROWS:", len(seen))
	fmt.Println("ORDER VIOLATIONS:", violations)
	fmt.Println("MISSING:", missing)
}

func checkInstance(instance model.EventInstance, cursor int64, seen map[string]struct{}) int {
	violations := 0
	if instance.Seq <= cursor {
		fmt.Println("SEQ NOT INCREASING:", instance.ID, instance.Seq, "after", cursor)
		violations++
	}
	if _, existed := seen[instance.ID]; existed {
		fmt.Println("DUPLICATED:", instance.ID)
		violations++
	}
	seen[instance.ID] = struct{}{}
	return violations
}

func benchCreateCommand() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "create events concurrently then replay the feed",
		Run: func(cmd *cobra.Command, args []string) {
			benchCreate(opts)
		},
	}
	cmd.Flags().Int64Var(&opts.worldID, "world", 1, "world id")
	cmd.Flags().IntVar(&opts.numThreads, "threads", 20, "number of concurrent writers")
	cmd.Flags().IntVar(&opts.numElements, "elements", 100, "events created per writer")
	return cmd
}
