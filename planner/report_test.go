package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan() *Plan {
	return &Plan{
		Request:       validRequest(),
		Research:      "Direct flights run around $600 round trip.",
		Itinerary:     "Day 1: Louvre. Day 2: Versailles.",
		Budget:        "Hotels average $150 per night.",
		LocalInsights: "September brings the Jazz à la Villette festival.",
		Summary:       "A week in Paris focused on art and food.",
	}
}

func TestPlanFilename(t *testing.T) {
	plan := samplePlan()
	assert.Equal(t, "travel_plan_Paris,_France_2026-09-01.txt", plan.Filename("txt"))
	assert.Equal(t, "travel_plan_Paris,_France_2026-09-01.pdf", plan.Filename("pdf"))
}

func TestPlanText(t *testing.T) {
	text := samplePlan().Text()

	assert.Contains(t, text, "Travel Plan: New York, NY to Paris, France")
	assert.Contains(t, text, "Dates: 2026-09-01 to 2026-09-08")
	assert.Contains(t, text, "Budget: $2000 USD")
	assert.Contains(t, text, "Your Personalized Travel Plan")
	assert.Contains(t, text, "A week in Paris focused on art and food.")
	assert.Contains(t, text, "Current Flight & Travel Info")
	assert.Contains(t, text, "Daily Itinerary")
	assert.Contains(t, text, "Budget & Deals")
	assert.Contains(t, text, "Local Events & Tips")
}

func TestPlanTextSkipsEmptySections(t *testing.T) {
	plan := samplePlan()
	plan.LocalInsights = ""
	text := plan.Text()
	assert.NotContains(t, text, "Local Events & Tips")
}

func TestPlanPDF(t *testing.T) {
	data, err := samplePlan().PDF()
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}
