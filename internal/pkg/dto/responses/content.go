package responses

type View struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Disclaimer  string `json:"disclaimer,omitempty"`
}

type TopicSummary struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type Topic struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

type MoodLog struct {
	Mood    int    `json:"mood"`
	Max     int    `json:"max"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type CrisisHelpline struct {
	Name        string `json:"name"`
	Number      string `json:"number"`
	Description string `json:"description"`
	Hours       string `json:"hours"`
	Featured    bool   `json:"featured,omitempty"`
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
