package domain

// Resource es un enlace curado asociado a una emocion.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Advice es la salida estructurada que se extrae del texto libre del LLM:
// respuesta empatica, recomendaciones numeradas y recursos estaticos.
type Advice struct {
	Response        string     `json:"response"`
	Recommendations []string   `json:"recommendations"`
	Resources       []Resource `json:"resources"`
}
