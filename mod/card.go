package mod

type Scheme string

const (
	SchemeVisa       Scheme = "visa"
	SchemeMastercard Scheme = "mastercard"
	SchemeAmex       Scheme = "amex"
	SchemeUnknown    Scheme = "unknown"
)

const (
	//amex总位数
	CardLengthAmex = 15
	//visa, mastercard, unknown总位数
	CardLengthDefault = 16
)

type CardRecord struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"month"` //MM
	ExpiryYear  string `json:"year"`  //YYYY
	Cvv         string `json:"cvv"`
}

type BatchRequest struct {
	Bin      string `json:"bin"`
	Quantity int    `json:"quantity"`
}

type BatchResult struct {
	Bin     string       `json:"bin"`
	Scheme  Scheme       `json:"scheme"`
	Records []CardRecord `json:"records"`
}

type BinInfo struct {
	Bin    string `json:"bin"`
	Valid  bool   `json:"valid"`
	Scheme Scheme `json:"scheme,omitempty"`
	Length int    `json:"length,omitempty"`
}
