package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

// PhotoUpload carries one photo submission from the multipart form.
type PhotoUpload struct {
	Title       string
	Description string
	Date        string
	Location    string
	UploadedBy  string
	Tags        string
	ImageData   []byte
	ImageType   string
}

// SongUpload carries one song submission from the upload form.
type SongUpload struct {
	Title       string
	Artist      string
	YouTubeURL  string
	Description string
	AddedBy     string
	Tags        string
	Mood        string
	Lyrics      string
}

type MemberInput struct {
	Name      string `json:"name"`
	Nickname  string `json:"nickname"`
	Role      string `json:"role"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url"`
}

// MemberPatch updates only the fields that are present in the request body.
type MemberPatch struct {
	Name      *string `json:"name"`
	Nickname  *string `json:"nickname"`
	Role      *string `json:"role"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

type MemoryInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Emoji        string `json:"emoji"`
	Gradient     string `json:"gradient"`
	DisplayOrder int    `json:"display_order"`
}

type MemoryPatch struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Emoji        *string `json:"emoji"`
	Gradient     *string `json:"gradient"`
	DisplayOrder *int    `json:"display_order"`
}
