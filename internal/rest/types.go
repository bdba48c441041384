package rest

type AppendChatRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

type AppendChatResponse struct {
	Content string `json:"content"`
}

type RenameChatRequest struct {
	ChatID   string `json:"chatId"`
	NewTitle string `json:"newTitle"`
}

type RenameChatResponse struct {
	Success bool `json:"success"`
}

type Error struct {
	Error string `json:"error"`
}
