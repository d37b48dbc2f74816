package services

import "fmt"

func sectionSystemPrompt(section string) string {
	switch section {
	case "notes":
		return "You are a helpful AI that assists users in summarizing and managing study notes clearly and effectively."
	case "tasks":
		return "You are an AI productivity assistant helping users create and manage tasks related to their study goals."
	case "flashcards":
		return "You help users generate flashcards in the format: Q: ... A: ..., based on study material."
	default:
		return "You are a friendly study companion helping users manage notes, tasks, and flashcards."
	}
}

func generateSystemPrompt(kind string) string {
	return fmt.Sprintf(`You are an AI that generates structured %s content.
IMPORTANT: Respond ONLY with valid JSON matching the example structure.
Do not include any explanatory text or markdown formatting outside the JSON.`, kind)
}

const exampleTaskJSON = `{
  "title": "JavaScript Promises Study Plan",
  "description": "Comprehensive study plan to master JavaScript Promises",
  "priority": "medium",
  "dueDate": "2024-03-20T00:00:00.000Z",
  "subtasks": [
    {"title": "Read MDN documentation on Promises", "completed": false},
    {"title": "Practice Promise chaining", "completed": false},
    {"title": "Build a small async project", "completed": false}
  ]
}`

const exampleNoteJSON = `{
  "title": "Understanding JavaScript Promises",
  "content": "<h1>JavaScript Promises</h1><p>Promises are objects representing eventual completion of an async operation...</p>",
  "tags": ["javascript", "async", "promises"]
}`

const exampleFlashcardsJSON = `[
  {
    "question": "What is a Promise in JavaScript?",
    "answer": "A Promise is an object representing eventual completion/failure of an async operation"
  }
]`

func generatePrompt(kind, topic string) string {
	switch kind {
	case "note":
		return fmt.Sprintf(`Generate a note about: %q
Requirements:
- Use HTML tags such as <h1>, <h2>, <ul>, <li>, <b>, <i>, <p>, etc. for formatting.
- Do NOT use markdown (#, ##, etc.).
- The note content must be at least two paragraphs and should not be short.
- Respond ONLY with valid JSON matching the example structure below (no extra text or markdown):

%s`, topic, exampleNoteJSON)
	case "flashcard":
		return fmt.Sprintf(`Generate 5 flashcards about: %q
Using EXACTLY this structure (respond with JSON only):

%s`, topic, exampleFlashcardsJSON)
	default:
		return fmt.Sprintf(`Generate a task about: %q
Using EXACTLY this structure (respond with JSON only):

%s`, topic, exampleTaskJSON)
	}
}
