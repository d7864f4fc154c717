package portfolio

import "github.com/shanavlnc/folio/app/enum"

// Kind is the type of a render tree node.
type Kind string

// node kinds
const (
	KindColumn Kind = "column"
	KindImage  Kind = "image"
	KindText   Kind = "text"
	KindCard   Kind = "card"
	KindRow    Kind = "row"
	KindSwitch Kind = "switch"
)

// node roles, used by renderers to pick typography and layout
const (
	RoleScreen       = "screen"
	RoleProfileImage = "profile-image"
	RoleName         = "name"
	RoleBio          = "bio"
	RoleSkills       = "skills"
	RoleProjects     = "projects"
	RoleContact      = "contact"
	RoleSectionTitle = "section-title"
	RoleListItem     = "list-item"
	RoleListText     = "list-text"
	RoleToggle       = "toggle"
	RoleToggleLabel  = "toggle-label"
)

// ToggleLabel is the label shown next to the theme switch.
const ToggleLabel = "Dark Mode"

// Node is an element of the render tree. Only the fields meaningful for its
// Kind are set: Text for text, Icon for rows with an icon, Checked for the switch.
type Node struct {
	Kind       Kind   `json:"kind"`
	Role       string `json:"role,omitempty"`
	Text       string `json:"text,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Color      string `json:"color,omitempty"`      // text or icon color
	Background string `json:"background,omitempty"` // fill color
	Border     string `json:"border,omitempty"`     // border or shadow color
	Checked    bool   `json:"checked,omitempty"`
	Children   []Node `json:"children,omitempty"`
}

// Walk calls fn for n and all of its descendants in depth-first order.
func (n Node) Walk(fn func(Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Tree is a fully styled screen ready for a renderer.
type Tree struct {
	Theme   enum.Theme `json:"theme"`
	Opacity float64    `json:"opacity"`
	Style   StyleSet   `json:"style"`
	Root    Node       `json:"root"`
}

// Section returns the top-level child with the given role.
func (t Tree) Section(role string) (Node, bool) {
	for _, c := range t.Root.Children {
		if c.Role == role {
			return c, true
		}
	}
	return Node{}, false
}

// BuildTree lays out the whole screen for the given theme and opacity.
// It is pure; the same inputs always give the same tree.
func BuildTree(theme enum.Theme, opacity float64, c Content) Tree {
	st := StyleFor(theme)

	text := func(role, s string) Node {
		return Node{Kind: KindText, Role: role, Text: s, Color: st.Text}
	}
	card := func(role, title string, rows []Node) Node {
		children := make([]Node, 0, len(rows)+1)
		children = append(children, text(RoleSectionTitle, title))
		children = append(children, rows...)
		return Node{Kind: KindCard, Role: role, Background: st.Card, Border: st.CardShadow, Children: children}
	}
	iconRow := func(icon, label string) Node {
		return Node{Kind: KindRow, Role: RoleListItem, Icon: icon, Color: st.Accent,
			Children: []Node{text(RoleListText, label)}}
	}

	skillRows := make([]Node, 0, len(c.Skills))
	for _, s := range c.Skills {
		skillRows = append(skillRows, iconRow(s.IconKey, s.Label))
	}

	projectRows := make([]Node, 0, len(c.Projects))
	for _, p := range c.Projects {
		projectRows = append(projectRows, text(RoleListText, p.Title))
	}

	contactRows := make([]Node, 0, len(c.Contacts))
	for _, ct := range c.Contacts {
		contactRows = append(contactRows, iconRow(ct.IconKey, ct.Text))
	}

	root := Node{
		Kind:       KindColumn,
		Role:       RoleScreen,
		Background: st.Page,
		Children: []Node{
			{Kind: KindImage, Role: RoleProfileImage, Text: c.Profile.ImageAsset, Border: st.Accent},
			text(RoleName, c.Profile.Name),
			text(RoleBio, c.Profile.Bio),
			card(RoleSkills, "Skills", skillRows),
			card(RoleProjects, "Projects", projectRows),
			card(RoleContact, "Contact", contactRows),
			{Kind: KindRow, Role: RoleToggle, Children: []Node{
				text(RoleToggleLabel, ToggleLabel),
				{Kind: KindSwitch, Role: RoleToggle, Checked: theme.IsDark(), Color: st.Accent},
			}},
		},
	}

	return Tree{Theme: theme, Opacity: clamp01(opacity), Style: st, Root: root}
}
