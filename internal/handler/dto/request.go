package dto

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddMovieRequest struct {
	Name     string `json:"name" binding:"required"`
	Genre    string `json:"genre" binding:"required"`
	Director string `json:"director" binding:"required"`
}

type AddShowtimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type BookSeatsRequest struct {
	Username    string `json:"username" binding:"required"`
	MovieID     int    `json:"movieId" binding:"required"`
	ShowtimeID  int    `json:"showtimeId" binding:"required"`
	Seats       []int  `json:"seats" binding:"required,min=1"`
	CardDetails string `json:"cardDetails"`
}
