package dto

// ImportError un problema detectado durante la importación Excel.
// RowNumber 0/1 indica error a nivel de archivo (no de fila).
type ImportError struct {
	RowNumber int    `json:"row_number"`
	Field     string `json:"field"`
	Message   string `json:"message"`
}

// ImportResult resumen de una importación.
type ImportResult struct {
	TotalRows int           `json:"total_rows"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Errors    []ImportError `json:"errors"`
	Success   bool          `json:"success"`
}

// ImportResponse respuesta del endpoint de importación.
type ImportResponse struct {
	Result          ImportResult `json:"result"`
	DurationSeconds float64      `json:"duration_seconds"`
}
