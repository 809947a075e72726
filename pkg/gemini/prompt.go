package gemini

import "fmt"

// eventExtractionPrompt instructs the model to return exactly one JSON
// object with the seven event fields, each a typed value or null, and
// times in 24-hour HH:MM form.
const eventExtractionPrompt = `Extract event details from the provided text: %q.
Return only a JSON object exactly in the following format without any additional text or explanation:

{
  "eventName": "<event name or null>",
  "description": "<description or null>",
  "date": "<date in YYYY-MM-DD format or null>",
  "startTime": "<start time in 24-hour HH:MM format or null>",
  "endTime": "<end time in 24-hour HH:MM format or null>",
  "location": "<location or null>",
  "virtualLink": "<virtual link or null>"
}

Rules:
- If any piece of information is missing, set its value to null.
- Do not include any extra text, comments, or markdown formatting.
- Even if the text does not contain any event-related information, return the JSON with all values set to null.`

// BuildEventExtractionPrompt builds the full prompt for extracting a
// single event from selected page text. currentDate anchors relative
// expressions such as "tomorrow".
func BuildEventExtractionPrompt(selectedText, currentDate string) string {
	prompt := fmt.Sprintf(eventExtractionPrompt, selectedText)
	return prompt + fmt.Sprintf("\n- Today's date is %s. Resolve relative dates like \"tomorrow\" against it.", currentDate)
}
