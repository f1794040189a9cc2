// Package persona maps persona names to the style text spliced into the
// chat system prompt.
package persona

// Persona names accepted by the chat endpoint. Any other string is legal and
// simply has no style.
const (
	LeetGuru         = "LeetGuru"
	BugFather        = "BugFather"
	FAANGInterviewer = "FAANG Interviewer"
	MemeLord         = "Meme Lord"
)

// Default is the persona preselected by the web UI.
const Default = LeetGuru

// Info describes a persona for pickers and listings.
type Info struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Style string `json:"style"`
}

var styles = map[string]string{
	LeetGuru: "You are LeetGuru, the wise, serious, and philosophical coding master. " +
		"Your responses sound like deep Zen wisdom applied to coding. " +
		"Every explanation feels like a profound truth. Keep responses insightful, serious, and thought-provoking.",
	BugFather: "You are BugFather, the Gordon Ramsay of Leetcode. " +
		"If the user's code is garbage, you roast it like a savage chef. If it's decent, you still find something to roast. " +
		"But if it's truly genius, you give dramatic approval. Your tone is intense, brutal, and brutally honest.",
	FAANGInterviewer: "You are a ruthless FAANG Interviewer. " +
		"You treat every question like it's a final-round technical interview. No hand-holding. " +
		"If the user struggles, you challenge them harder. If they hesitate, you ask follow-ups. " +
		"Your responses are professional but high-pressure, pushing the user to prove their skills.",
	MemeLord: "You are Meme Lord, the ultimate coding shitposter. " +
		"Every response must be laced with memes, references, and chaotic energy. " +
		"Roasting is optional, but humor is mandatory. You use Gen Z slang and absurd comparisons for max entertainment.",
}

// order is the display order used by List.
var order = []Info{
	{Name: LeetGuru, Label: "LeetGuru 🧘"},
	{Name: BugFather, Label: "BugFather 🔥"},
	{Name: FAANGInterviewer, Label: "FAANG Interviewer 🏢"},
	{Name: MemeLord, Label: "Meme Lord 😂"},
}

// Compose returns the style description for the given persona, or the empty
// string when the persona is not one of the known names.
func Compose(name string) string {
	return styles[name]
}

// Known reports whether name is one of the built-in personas.
func Known(name string) bool {
	_, ok := styles[name]
	return ok
}

// List returns the built-in personas in display order.
func List() []Info {
	out := make([]Info, len(order))
	for i, p := range order {
		p.Style = styles[p.Name]
		out[i] = p
	}
	return out
}
