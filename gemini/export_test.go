package gemini

// ResponseText exposes responseText for external tests.
var ResponseText = responseText
