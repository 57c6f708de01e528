package catalog

import (
	"encoding/json"
	"testing"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validationIssuesOf(t *testing.T, err error) []apperr.Issue {
	validationErr, ok := err.(*apperr.ValidationError)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	return validationErr.Issues
}

func TestCatalog_Lookup(t *testing.T) {
	c := Default()

	spec, ok := c.Lookup("GLOBAL.MARKET.FUEL_SHOCK")
	assert.Equal(t, true, ok)
	assert.Equal(t, "GLOBAL.MARKET.FUEL_SHOCK", spec.ID())

	spec, ok = c.Lookup("NOT.REAL")
	assert.Equal(t, false, ok)
	assert.Nil(t, spec)

	assert.Equal(t, []string{
		"AIRLINE.REPUTATION_HIT",
		"AIRPORT.RUNWAY_CLOSED",
		"GLOBAL.MARKET.FUEL_SHOCK",
	}, c.IDs())
}

func TestCatalog_New__Duplicated_Panics(t *testing.T) {
	assert.Panics(t, func() {
		New(FuelShock, FuelShock)
	})
}

func TestFuelShock__Validate_And_Define(t *testing.T) {
	payload, err := FuelShock.Validate(json.RawMessage(`{"factor": 1.5, "ttlHours": 6}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, FuelShockPayload{Factor: 1.5, TTLHours: 6}, payload)

	def := FuelShock.Define(payload)
	assert.Equal(t, model.EventDefinition{
		ID:             "GLOBAL.MARKET.FUEL_SHOCK",
		TitleKey:       "event.market.fuelShock.title",
		DescriptionKey: "event.market.fuelShock.desc",

		Continuance: model.TemporaryContinuance{TTLHours: 6},
		Targets:     []model.TargetKey{model.TargetWorld},
		Effects: []model.EffectOp{
			model.MultiplierEffect{
				Target:   model.TargetWorld,
				Metric:   model.MetricFuelPrice,
				Factor:   newDecimal("1.5"),
				TTLHours: 6,
			},
		},

		RequiresPlayerAction: model.RequiredActionNone,
		Severity:             model.SeverityMajor,
	}, def)
	assert.Equal(t, nil, def.Validate())
}

func TestFuelShock__Validate__Collects_All_Field_Issues(t *testing.T) {
	_, err := FuelShock.Validate(json.RawMessage(`{"factor": 3, "reason": ""}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "factor", Code: "too_big", Message: "must be less than or equal to 2"},
		{Path: "ttlHours", Code: "invalid_type", Message: "required"},
	}, validationIssuesOf(t, err))
}

func TestFuelShock__Validate__Reason_Too_Long(t *testing.T) {
	reason := make([]byte, 201)
	for i := range reason {
		reason[i] = 'a'
	}
	raw, _ := json.Marshal(map[string]interface{}{
		"factor": 1.1, "ttlHours": 2, "reason": string(reason),
	})

	_, err := FuelShock.Validate(raw)
	assert.Equal(t, []apperr.Issue{
		{Path: "reason", Code: "too_big", Message: "must contain at most 200 character(s)"},
	}, validationIssuesOf(t, err))
}

func TestFuelShock__Validate__Non_Integer_TTL(t *testing.T) {
	_, err := FuelShock.Validate(json.RawMessage(`{"factor": 1.5, "ttlHours": 6.5}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "ttlHours", Code: "invalid_type", Message: "expected int, received number 6.5"},
	}, validationIssuesOf(t, err))
}

func TestFuelShock__Validate__Unknown_Field(t *testing.T) {
	_, err := FuelShock.Validate(json.RawMessage(`{"factor": 1.5, "ttlHours": 6, "foo": 1}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "foo", Code: "unrecognized_keys", Message: `unrecognized key "foo"`},
	}, validationIssuesOf(t, err))
}

func TestFuelShock__Validate__Malformed_JSON(t *testing.T) {
	_, err := FuelShock.Validate(json.RawMessage(`{"factor": `))
	issues := validationIssuesOf(t, err)
	assert.Equal(t, 1, len(issues))
	assert.Equal(t, "invalid_json", issues[0].Code)

	_, err = FuelShock.Validate(json.RawMessage(`{"factor": 1.5, "ttlHours": 6} {}`))
	issues = validationIssuesOf(t, err)
	assert.Equal(t, 1, len(issues))
	assert.Equal(t, "invalid_json", issues[0].Code)
}

func TestFuelShock__Validate__Empty_Payload(t *testing.T) {
	_, err := FuelShock.Validate(nil)
	assert.Equal(t, []apperr.Issue{
		{Path: "factor", Code: "invalid_type", Message: "required"},
		{Path: "ttlHours", Code: "invalid_type", Message: "required"},
	}, validationIssuesOf(t, err))
}

func TestRunwayClosed__Default_TTL(t *testing.T) {
	payload, err := RunwayClosed.Validate(json.RawMessage(`{"airportId": "SVO"}`))
	assert.Equal(t, nil, err)
	assert.Equal(t, RunwayClosedPayload{AirportID: "SVO", TTLHours: 72}, payload)

	def := RunwayClosed.Define(payload)
	assert.Equal(t, model.TemporaryContinuance{TTLHours: 72}, def.Continuance)
	assert.Equal(t, []model.TargetKey{"airport:SVO"}, def.Targets)
	assert.Equal(t, []model.EffectOp{
		model.MultiplierEffect{
			Target:   "airport:SVO",
			Metric:   model.MetricAirportCapacity,
			Factor:   newDecimal("0.7"),
			TTLHours: 72,
		},
	}, def.Effects)
	assert.Equal(t, model.RequiredActionOptional, def.RequiresPlayerAction)
	assert.Equal(t, nil, def.Validate())
}

func TestReputationHit__Define_Delta(t *testing.T) {
	payload, err := ReputationHit.Validate(json.RawMessage(`{"airlineId": "42", "amount": -12.5}`))
	assert.Equal(t, nil, err)

	def := ReputationHit.Define(payload)
	assert.Equal(t, model.InstantContinuance{}, def.Continuance)
	assert.Equal(t, []model.EffectOp{
		model.DeltaEffect{
			Target: "airline:42",
			Metric: model.MetricReputation,
			Amount: newDecimal("-12.5"),
		},
	}, def.Effects)
	assert.Equal(t, model.SeverityMajor, def.Severity)
}

func TestReputationHit__Validate__Missing_And_Zero_Amount(t *testing.T) {
	_, err := ReputationHit.Validate(json.RawMessage(`{"airlineId": "42"}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "amount", Code: "invalid_type", Message: "required"},
	}, validationIssuesOf(t, err))

	_, err = ReputationHit.Validate(json.RawMessage(`{"airlineId": "42", "amount": 0}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "amount", Code: "invalid_value", Message: "must not be 0"},
	}, validationIssuesOf(t, err))
}

func TestReputationHit__Validate__Too_Precise_Amount(t *testing.T) {
	_, err := ReputationHit.Validate(json.RawMessage(`{"airlineId": "42", "amount": 1.23456}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "amount", Code: "too_precise", Message: "must have at most 4 decimal place(s)"},
	}, validationIssuesOf(t, err))

	_, err = ReputationHit.Validate(json.RawMessage(`{"airlineId": "42", "amount": -1.2345}`))
	assert.Equal(t, nil, err)
}

func TestFuelShock__Validate__Too_Precise_Factor(t *testing.T) {
	_, err := FuelShock.Validate(json.RawMessage(`{"factor": 1.23456789, "ttlHours": 6}`))
	assert.Equal(t, []apperr.Issue{
		{Path: "factor", Code: "too_precise", Message: "must have at most 6 decimal place(s)"},
	}, validationIssuesOf(t, err))

	payload, err := FuelShock.Validate(json.RawMessage(`{"factor": 1.234567, "ttlHours": 6}`))
	assert.Equal(t, nil, err)

	def := FuelShock.Define(payload)
	assert.Equal(t, "1.234567", def.Effects[0].(model.MultiplierEffect).Factor.String())
	assert.Equal(t, nil, def.Validate())
}

func TestReputationSeverity(t *testing.T) {
	assert.Equal(t, model.SeverityMinor, reputationSeverity(5))
	assert.Equal(t, model.SeverityMajor, reputationSeverity(-10))
	assert.Equal(t, model.SeverityCrisis, reputationSeverity(75))
}
