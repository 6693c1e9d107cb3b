package champions

// Champion is an entry of the champion catalog.
type Champion struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// championResponse is the body of /cdn/<version>/data/<locale>/champion.json.
type championResponse struct {
	Type    string `json:"type"`
	Version string `json:"version"`
	Data    map[string]struct {
		ID    string `json:"id"`
		Key   string `json:"key"`
		Name  string `json:"name"`
		Title string `json:"title"`
	} `json:"data"`
}
