package models

// User is the public representation of a registered user.
type User struct {
	ID              string `json:"id_usuario" gorm:"primaryKey;type:varchar(32)"`
	Email           string `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Nombre          string `json:"nombre" gorm:"type:varchar(30)" validate:"required,min=1,max=30"`
	Apellido        string `json:"apellido" gorm:"type:varchar(30)" validate:"required,min=1,max=30"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// UserAccount is the persisted record and the /registrar request body: the
// public user plus the password. The password is stored as a bcrypt hash and
// is never included in a response.
type UserAccount struct {
	User       `gorm:"embedded"`
	Contrasena string `json:"contrasena" gorm:"type:varchar(255)" validate:"required,min=8"`
}

// Credentials is the /ingresar request body.
type Credentials struct {
	ID         string `json:"id_usuario"`
	Email      string `json:"email" validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required,min=8"`
}

// LoginResult is the /ingresar response body.
type LoginResult struct {
	ID      string `json:"id_usuario"`
	Email   string `json:"email"`
	Mensaje string `json:"mensaje"`
}
