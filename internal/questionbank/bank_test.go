package questionbank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinvandever/reservoir-mvp-sub000/internal/model"
)

func TestBank_Validates(t *testing.T) {
	require.NoError(t, Validate(Bank()))
}

func TestBank_Shape(t *testing.T) {
	b := Bank()

	assert.Len(t, b.Sections, 7)
	assert.Equal(t, 50, b.TotalQuestions)
	assert.Equal(t, 33, b.RequiredQuestions)

	weightSum := 0
	for _, sec := range b.Sections {
		weightSum += sec.Weight
	}
	assert.Equal(t, 100, weightSum)
}

func TestBank_SectionWeights(t *testing.T) {
	b := Bank()

	want := map[model.SectionID]int{
		model.SectionFoundation:   15,
		model.SectionSystems:      20,
		model.SectionLeadGen:      20,
		model.SectionMarketing:    15,
		model.SectionTransactions: 15,
		model.SectionMarket:       5,
		model.SectionGoals:        10,
	}
	for _, sec := range b.Sections {
		assert.Equal(t, want[sec.ID], sec.Weight, "section %s", sec.ID)
	}
}

func TestBank_OptionalSections(t *testing.T) {
	b := Bank()

	for _, sec := range b.Sections {
		optional := sec.ID == model.SectionMarketing || sec.ID == model.SectionMarket
		assert.Equal(t, !optional, sec.Required, "section %s", sec.ID)
	}
}

func TestBank_MinimumNeverExceedsCount(t *testing.T) {
	for _, sec := range Bank().Sections {
		assert.LessOrEqual(t, sec.CompletionCriteria.MinimumQuestions, len(sec.Questions),
			"section %s", sec.ID)
	}
}

func TestBank_Lookups(t *testing.T) {
	b := Bank()

	sec := b.Section(model.SectionLeadGen)
	require.NotNil(t, sec)
	assert.Equal(t, model.SectionLeadGen, sec.ID)

	q := b.Question("foundation_transactions")
	require.NotNil(t, q)
	assert.Equal(t, model.SectionFoundation, q.Section)
	assert.True(t, q.Required)

	assert.Nil(t, b.Section("nope"))
	assert.Nil(t, b.Question("nope"))
}

func TestBank_DependenciesResolve(t *testing.T) {
	b := Bank()

	byID := make(map[string]bool)
	for _, sec := range b.Sections {
		for _, q := range sec.Questions {
			byID[q.ID] = true
		}
	}
	for _, sec := range b.Sections {
		for _, q := range sec.Questions {
			for _, dep := range q.Dependencies {
				assert.True(t, byID[dep], "question %s dependency %s", q.ID, dep)
			}
			for _, fu := range q.FollowUpTriggers {
				assert.True(t, byID[fu], "question %s follow-up %s", q.ID, fu)
			}
		}
	}
}

func TestValidate_RejectsBadWeights(t *testing.T) {
	b := Bank()
	broken := *b
	broken.Sections = append([]model.Section(nil), b.Sections...)
	broken.Sections[0].Weight += 5

	err := Validate(&broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight")
}
