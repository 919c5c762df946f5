package models

import "time"

// User represents a registered gardener.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"nama" gorm:"column:nama;type:varchar(100);not null"`
	LastName  string    `json:"nama_belakang" gorm:"column:nama_belakang;type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	Phone     string    `json:"telepon" gorm:"column:telepon;type:varchar(32)"`
	Address   string    `json:"alamat" gorm:"column:alamat;type:varchar(255)"`
	Country   string    `json:"negara" gorm:"column:negara;type:varchar(100)"`
	City      string    `json:"kota" gorm:"column:kota;type:varchar(100)"`
	Avatar    string    `json:"foto" gorm:"column:foto;type:varchar(255)"` // file name under the uploads dir
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName pins the table name used by the front-end era schema.
func (User) TableName() string { return "users" }

// PublicUser is the subset of a user returned by login.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"nama"`
	Email string `json:"email"`
}

// Public returns the login-safe view of u.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Principal is the authenticated caller, rebuilt from token claims on every request.
type Principal struct {
	ID    string
	Name  string
	Email string
}

// ProfileUpdate carries the optional fields of a profile edit.
// A nil field keeps the stored value.
type ProfileUpdate struct {
	Name     *string
	LastName *string
	Phone    *string
	Address  *string
	Country  *string
	City     *string
}

// Apply copies every non-nil field onto u.
func (p ProfileUpdate) Apply(u *User) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&u.Name, p.Name)
	set(&u.LastName, p.LastName)
	set(&u.Phone, p.Phone)
	set(&u.Address, p.Address)
	set(&u.Country, p.Country)
	set(&u.City, p.City)
}
