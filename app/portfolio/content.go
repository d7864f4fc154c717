// Package portfolio implements the portfolio screen: the fixed content, the
// theme flag, the one-shot fade-in animator and the renderer-neutral render tree.
package portfolio

// Profile describes the person shown at the top of the screen.
type Profile struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	ImageAsset string `json:"image_asset"`
}

// SkillEntry is a single row of the skills card.
type SkillEntry struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	IconKey string `json:"icon"`
}

// ProjectEntry is a single row of the projects card.
type ProjectEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ContactEntry is a single row of the contact card.
type ContactEntry struct {
	IconKey string `json:"icon"`
	Text    string `json:"text"`
}

// Content holds everything the screen displays besides styling.
type Content struct {
	Profile  Profile        `json:"profile"`
	Skills   []SkillEntry   `json:"skills"`
	Projects []ProjectEntry `json:"projects"`
	Contacts []ContactEntry `json:"contacts"`
}

var profile = Profile{
	Name:       "Shana Faith Valencia",
	Bio:        "3rd-year BS Computer Science student specializing in Game Development",
	ImageAsset: "formal.jpg",
}

var skills = [...]SkillEntry{
	{ID: "1", Label: "Adobe Photoshop", IconKey: "paint-brush"},
	{ID: "2", Label: "Adobe After Effects", IconKey: "video"},
	{ID: "3", Label: "React", IconKey: "react"},
	{ID: "4", Label: "Node.js", IconKey: "node-js"},
	{ID: "5", Label: "UI/UX", IconKey: "palette"},
}

var projects = [...]ProjectEntry{
	{ID: "1", Title: "Campus Chronicles"},
	{ID: "2", Title: "Inventory Management System"},
	{ID: "3", Title: "Todo App"},
	{ID: "4", Title: "Flappy Bird Game"},
	{ID: "5", Title: "Healthy Buddy App"},
}

var contacts = [...]ContactEntry{
	{IconKey: "email", Text: "shanafaithv@gmail.com"},
	{IconKey: "github", Text: "github.com/shanavlnc"},
	{IconKey: "linkedin", Text: "linkedin.com/in/shanafaithdvalencia"},
}

// DefaultContent returns the fixed portfolio content in declaration order.
// Each call returns fresh slices, so callers may modify them freely.
func DefaultContent() Content {
	return Content{
		Profile:  profile,
		Skills:   append([]SkillEntry(nil), skills[:]...),
		Projects: append([]ProjectEntry(nil), projects[:]...),
		Contacts: append([]ContactEntry(nil), contacts[:]...),
	}
}
