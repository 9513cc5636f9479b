package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	ai "github.com/wayfinder-ai/wayfinder"
)

// framingInstructions steer every stage away from cached answers and
// markdown output, and forbid asking the user follow-up questions.
const framingInstructions = "IMPORTANT INSTRUCTION: This is a NEW query. Use the available search tools to find CURRENT, FRESH information. " +
	"DO NOT use any cached or previous responses. Each query should trigger NEW searches. " +
	"IMPORTANT INSTRUCTION: Give output in plain text and not markdown. Do not use special characters too much. " +
	"NEVER ask the user for more information. If any information is missing, use search tools or make reasonable assumptions. " +
	"ALWAYS provide a complete answer based on your FRESH search results and current knowledge."

// buildPrompt composes a stage prompt: a session marker, the persona
// framing, the standing instructions, and the stage query.
func buildPrompt(p Persona, query string) []ai.Message {
	sessionID := uuid.NewString()[:8]
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	content := fmt.Sprintf(
		"Session ID: %s | Time: %s\nRole: %s\nGoal: %s\nBackground: %s\n\n%s\n\nCURRENT USER QUERY (PROCESS THIS FRESH): %s",
		sessionID, timestamp, p.Role, p.Goal, p.Backstory, framingInstructions, query,
	)

	return []ai.Message{{Role: ai.RoleUser, Content: content}}
}

func researchQuery(req TripRequest) string {
	year := tripYear(req)
	return fmt.Sprintf(
		"IMPORTANT: This is a FRESH query for a trip from %s to %s. "+
			"You MUST perform NEW searches now. Do not use any previous information. "+
			"Search step 1: Search for 'flights %s to %s %s %s %s current prices' "+
			"Search step 2: Search for 'visa requirements %s from %s %s current' "+
			"Search step 3: Search for 'weather %s %s %s forecast' "+
			"Provide the FRESH search results with specific prices, airlines, and current information.",
		req.Origin, req.Destination,
		req.Origin, req.Destination, req.StartDate, req.EndDate, year,
		req.Destination, req.Origin, year,
		req.Destination, req.StartDate, year,
	)
}

func itineraryQuery(req TripRequest) string {
	year := tripYear(req)
	return fmt.Sprintf(
		"FRESH QUERY: Create itinerary for %s from %s to %s. "+
			"You MUST search for NEW information now: "+
			"Search for: 'things to do %s %s %s %s current events' "+
			"Search for: 'attractions %s opening hours %s current' "+
			"Create a day-by-day itinerary based on your FRESH search results.",
		req.Destination, req.StartDate, req.EndDate,
		req.Destination, req.Interests, req.StartDate, year,
		req.Destination, year,
	)
}

func budgetQuery(req TripRequest) string {
	year := tripYear(req)
	return fmt.Sprintf(
		"FRESH BUDGET SEARCH for %s: "+
			"Consider the number of days from %s to %s. "+
			"Search for: 'hotel prices %s %s %s current deals' "+
			"Search for: 'restaurant costs %s %s budget dining' "+
			"Search for: 'activity prices %s %s %s discounts' "+
			"Budget is %s. Provide FRESH pricing information from your searches.",
		req.Destination,
		req.StartDate, req.EndDate,
		req.Destination, req.StartDate, year,
		req.Destination, year,
		req.Destination, req.Interests, year,
		req.Budget,
	)
}

func localQuery(req TripRequest) string {
	year := tripYear(req)
	return fmt.Sprintf(
		"FRESH LOCAL SEARCH for %s: "+
			"Search for: 'local events %s %s to %s %s' "+
			"Search for: 'cultural activities %s %s %s current' "+
			"Search for: 'local tips %s %s etiquette customs' "+
			"Provide FRESH local information from your searches.",
		req.Destination,
		req.Destination, req.StartDate, req.EndDate, year,
		req.Destination, req.Interests, year,
		req.Destination, year,
	)
}

func summaryQuery(research, itinerary, budget, local string) string {
	return fmt.Sprintf(
		"Create a concise travel plan summary with these sections: "+
			"Current Flight & Travel Info, Daily Itinerary, Budget & Deals, Local Events & Tips.\n\n"+
			"Flight & Travel Info:\n%s\n\n"+
			"Itinerary:\n%s\n\n"+
			"Budget & Deals:\n%s\n\n"+
			"Local Events & Tips:\n%s\n\n"+
			"Make it actionable and current for the traveler.",
		research, itinerary, budget, local,
	)
}

// tripYear extracts the year from the start date so search directives
// target current results.
func tripYear(req TripRequest) string {
	start, err := time.Parse(DateFormat, req.StartDate)
	if err != nil {
		return time.Now().Format("2006")
	}
	return start.Format("2006")
}
