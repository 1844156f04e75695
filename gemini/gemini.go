// Package gemini implements [oreum.Model] for the Google Gemini API.
//
// It wraps the google.golang.org/genai SDK, translating between oreum's
// domain types and the Gemini API types. Chat sessions are genai chats, so
// the SDK keeps and replays the curated history.
package gemini

const defaultModel = "gemini-2.5-flash"
