package handler

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createStoryRequest struct {
	Object   string `json:"object" binding:"required"`
	Sentence string `json:"sentence" binding:"required"`
}
