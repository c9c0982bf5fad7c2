package core

const (
	AppName          = "QuakeAid"
	AppUserAgent     = "QuakeAid/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/quakeaid"
	AppVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Model struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length"`
}
