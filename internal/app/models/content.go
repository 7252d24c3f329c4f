package models

// View is one destination of the navigation menu.
type View struct {
	Slug        string
	Title       string
	Subtitle    string
	Description string
	Disclaimer  string
}

type Topic struct {
	Slug    string
	Title   string
	Content string
}

type CrisisHelpline struct {
	Name        string
	Number      string
	Description string
	Hours       string
	Featured    bool
}
