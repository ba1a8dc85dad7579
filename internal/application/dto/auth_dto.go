package dto

// LoginRequest entrada para login: RUT + ID de empleado (secreto del esquema actual).
type LoginRequest struct {
	RUT        string `json:"rut" validate:"required"`
	EmployeeID string `json:"employee_id" validate:"required"`
}

// UserResponse identidad autenticada (sin secretos).
type UserResponse struct {
	RUT          string   `json:"rut"`
	EmployeeCode string   `json:"employee_code"`
	Name         string   `json:"name"`
	Roles        []string `json:"roles"`
}

// LoginResponse salida con token JWT e identidad.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
