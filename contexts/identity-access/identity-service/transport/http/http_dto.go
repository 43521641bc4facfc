package httptransport

// StudentDTO mirrors the public account shape.
type StudentDTO struct {
	ID            string  `json:"id"`
	Ime           string  `json:"ime"`
	Prezime       string  `json:"prezime"`
	BrojIndeksa   string  `json:"brojIndeksa"`
	Email         string  `json:"email"`
	DatumRodjenja *string `json:"datumRodjenja"`
	Status        string  `json:"status"`
	Uloga         string  `json:"uloga"`
}

type RegisterRequest struct {
	Ime                  string `json:"ime"`
	Prezime              string `json:"prezime"`
	BrojIndeksa          string `json:"broj_indeksa"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type RegisterResponse struct {
	Message string     `json:"message"`
	Student StudentDTO `json:"student"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	Student     StudentDTO `json:"student"`
}

type UpdateStudentRequest struct {
	Ime           *string `json:"ime"`
	Prezime       *string `json:"prezime"`
	DatumRodjenja *string `json:"datum_rodjenja"`
	Status        *string `json:"status"`
}

type ListStudentsResponse struct {
	Data []StudentDTO `json:"data"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
