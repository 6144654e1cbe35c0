package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("max_hp", "must be at least %d", 1).
		RequiredField("Roller")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "name: is required")
	s.Assert().Contains(err.Error(), "max_hp: must be at least 1")
	s.Assert().Contains(err.Error(), "Roller: is required")

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be at least 1"}, validationErrors["max_hp"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("attack_chance", 120, 0, 100, vb)
	errors.ValidateRange("roster_size", 3, 1, 6, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["attack_chance"][0], "must be between 0 and 100")
	s.Assert().NotContains(validationErrors, "roster_size")
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("sp_defense", 0, vb)
	errors.ValidatePositive("max_hp", 20, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Equal([]string{"must be positive"}, validationErrors["sp_defense"])
	s.Assert().NotContains(validationErrors, "max_hp")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"normal", "fire", "water", "leaf"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("type", "rock", allowed, vb)
	errors.ValidateEnum("skill_type", "fire", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["type"][0], "must be one of: normal, fire, water, leaf")
	s.Assert().NotContains(validationErrors, "skill_type")
}
