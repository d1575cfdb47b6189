package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestBuildListsFieldsInOrder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("name").
		Fieldf("level", "must be at least %d", 1).
		Field("name", "must be printable")

	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeInvalidArgument, errors.GetCode(err))
	s.Assert().Contains(err.Error(), "validation failed: level: must be at least 1; name: is required, must be printable")

	var e *errors.Error
	s.Require().ErrorAs(err, &e)
	s.Assert().Equal(map[string][]string{
		"level": {"must be at least 1"},
		"name":  {"is required", "must be printable"},
	}, e.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("Catalog").
		Fieldf("ClassID", "unknown class %q", "artificer")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Catalog: is required")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.Assert().Nil(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Tordek", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", "xml", []string{"text", "json"}, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "must be one of: text, json")
}
