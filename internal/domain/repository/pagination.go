package repository

// Page paginación por offset ya normalizada (Skip/Take derivados de page/limit).
type Page struct {
	Skip int
	Take int
}
