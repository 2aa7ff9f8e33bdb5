package domain

// Session is the backend's answer to a session check. Username and Avatar
// are only meaningful when LoggedIn is true.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

type Post struct {
	ID           int64   `json:"id"`
	User         string  `json:"user"`
	Avatar       string  `json:"avatar"`
	Content      string  `json:"content"`
	Timestamp    string  `json:"timestamp"`
	CommentCount int     `json:"comment_count"`
	RatingAvg    float64 `json:"rating_avg"`
	RatingCount  int     `json:"rating_count"`
}

// Comment covers both post comments and asset comments; the backend returns
// the same shape for both threads.
type Comment struct {
	ID          int64   `json:"id"`
	Username    string  `json:"username"`
	Avatar      string  `json:"avatar"`
	Content     string  `json:"content"`
	Timestamp   string  `json:"timestamp"`
	RatingAvg   float64 `json:"rating_avg"`
	RatingCount int     `json:"rating_count"`
}

type Profile struct {
	Username      string `json:"username"`
	FullName      string `json:"full_name"`
	Bio           string `json:"bio"`
	Avatar        string `json:"avatar"`
	ProfileImage  string `json:"profile_image"`
	JoinedDate    string `json:"joined_date"`
	TotalPosts    int    `json:"total_posts"`
	TotalComments int    `json:"total_comments"`
	Posts         []Post `json:"posts"`
}

// ProfileUpdate is the edit buffer sent to the profile endpoint. Either an
// inline base64 image or an avatar emoji is set, never both; RemoveImage
// tells the backend to drop a previously uploaded image.
type ProfileUpdate struct {
	Bio          string `json:"bio"`
	Avatar       string `json:"avatar,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	RemoveImage  bool   `json:"remove_image,omitempty"`
}
