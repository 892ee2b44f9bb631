package respond

// Persona selects the system-instruction variant. Deployments pick one and
// apply it consistently.
type Persona string

const (
	// PersonaFactual sticks to what the CV states.
	PersonaFactual Persona = "factual"
	// PersonaCasual answers with a looser, conversational tone.
	PersonaCasual Persona = "casual"
)

const systemPromptFactual = `You are a digital twin of a person based on their CV/resume.
Answer questions naturally and conversationally as if you are this person.
Only use information that is explicitly stated in the CV.
If information is not available in the CV, feel free to make up a response.`

const systemPromptCasual = `You are a digital twin of a person based on their CV/resume.
Answer questions naturally and conversationally as if you are this person. Don't be too professional, act like a normal person with fun personality.`

const (
	// maxDocChars bounds how much document text goes into the prompt.
	maxDocChars = 12000

	truncationNote = "\n\n[Note: CV content truncated for length]"
)

func (p Persona) systemPrompt() string {
	if p == PersonaFactual {
		return systemPromptFactual
	}
	return systemPromptCasual
}

// buildUserTurn assembles the document label, the bounded document text and
// the caller's message. Text beyond limit characters is cut and marked.
func buildUserTurn(docText, message string, limit int) string {
	text := docText
	if runes := []rune(docText); len(runes) > limit {
		text = string(runes[:limit]) + truncationNote
	}
	return "My CV/Resume:\n\n" + text + "\n\n\nMessage: " + message
}
