package world

// PanelData holds the static tables consumed by zone panels
type PanelData struct {
	Archive   ArchiveData  `yaml:"archive" json:"archive"`
	Snippets  []Snippet    `yaml:"snippets" json:"snippets"`
	Skills    []Skill      `yaml:"skills" json:"skills"`
	Gallery   []Frame      `yaml:"gallery" json:"gallery"`
	Guestbook []GuestEntry `yaml:"guestbook" json:"guestbook"`
}

type ArchiveData struct {
	ResumeURL string   `yaml:"resume_url" json:"resumeUrl"`
	Entries   []string `yaml:"entries" json:"entries"`
}

type Snippet struct {
	Title string `yaml:"title" json:"title"`
	Lang  string `yaml:"lang" json:"lang"`
	Code  string `yaml:"code" json:"code"`
}

// Skill unlocks once the item named by Unlock has been collected
type Skill struct {
	Name   string `yaml:"name" json:"name"`
	Level  int    `yaml:"level" json:"level"`
	Unlock string `yaml:"unlock" json:"unlock"`
}

type Frame struct {
	Title   string `yaml:"title" json:"title"`
	Caption string `yaml:"caption" json:"caption"`
}

type GuestEntry struct {
	Name    string `yaml:"name" json:"name"`
	Message string `yaml:"message" json:"message"`
}
