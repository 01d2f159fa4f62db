package metadomain

// Insight é uma linha da API de insights; os números chegam como texto
type Insight struct {
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Spend       string `json:"spend"`
	CTR         string `json:"ctr"`
	CPC         string `json:"cpc"`
	CPM         string `json:"cpm"`
	Frequency   string `json:"frequency"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
}

type ResponseInsights struct {
	Data   []Insight `json:"data"`
	Paging Paging    `json:"paging"`
}
