package pgrepo

// rowScanner общий интерфейс pgx.Row и pgx.Rows для scan-хелперов.
type rowScanner interface {
	Scan(dest ...any) error
}
