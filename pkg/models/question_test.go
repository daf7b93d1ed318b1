package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionValidate(t *testing.T) {
	valid := Question{
		Text:          "What color is the sky?",
		OptionA:       "Blue",
		OptionB:       "Green",
		OptionC:       "Red",
		OptionD:       "Yellow",
		CorrectOption: "A",
	}
	assert.NoError(t, valid.Validate())

	missingText := valid
	missingText.Text = "   "
	assert.Error(t, missingText.Validate())

	missingOption := valid
	missingOption.OptionD = ""
	assert.Error(t, missingOption.Validate())

	badCorrect := valid
	badCorrect.CorrectOption = "E"
	assert.Error(t, badCorrect.Validate())

	lowerCorrect := valid
	lowerCorrect.CorrectOption = "c"
	assert.NoError(t, lowerCorrect.Validate())
}

func TestQuestionOption(t *testing.T) {
	q := Question{OptionA: "one", OptionB: "two", OptionC: "three", OptionD: "four"}

	assert.Equal(t, "one", q.Option("A"))
	assert.Equal(t, "two", q.Option("b"))
	assert.Equal(t, "", q.Option("Z"))
}

func TestPerformanceAccuracy(t *testing.T) {
	assert.Equal(t, 0.0, (&PerformanceRecord{}).Accuracy())
	assert.Equal(t, 0.75, (&PerformanceRecord{TimesAsked: 4, TimesCorrect: 3}).Accuracy())
}
