package models

import "time"

// TweetAuthor is the user representation embedded in a tweet. Password and
// birth date are excluded from it entirely.
type TweetAuthor struct {
	ID       string `json:"id_usuario" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=30"`
	Apellido string `json:"apellido" validate:"required,min=1,max=30"`
}

// Tweet represents a published tweet. TimestampAct is set only once the tweet
// has been edited.
type Tweet struct {
	ID           string      `json:"id_tweet" gorm:"primaryKey;type:varchar(32)"`
	Contenido    string      `json:"contenido" gorm:"type:varchar(256)" validate:"required,min=1,max=256"`
	TimestampPub time.Time   `json:"timestamp_pub"`
	TimestampAct *time.Time  `json:"timestamp_act,omitempty"`
	Autor        TweetAuthor `json:"autor" gorm:"embedded;embeddedPrefix:autor_"`
}
