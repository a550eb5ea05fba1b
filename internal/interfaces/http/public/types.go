package public

type sessionResponse struct {
	ID        string                `json:"id"`
	CreatedAt string                `json:"createdAt"`
	Survey    surveyStateResponse   `json:"survey"`
	Fitting   fittingStateResponse  `json:"fitting"`
}

type surveyStateResponse struct {
	Step      int              `json:"step"`
	Submitted bool             `json:"submitted"`
	Answers   answersResponse  `json:"answers"`
	Result    *personaResponse `json:"result,omitempty"`
	Budget    *budgetResponse  `json:"budget,omitempty"`
}

type answersResponse struct {
	PhotoBudget  string   `json:"photoBudget"`
	GuestCount   string   `json:"guestCount"`
	Style        string   `json:"style"`
	PrepStyle    string   `json:"prepStyle"`
	Moods        []string `json:"moods"`
	BudgetStudio int      `json:"budgetStudio"`
	BudgetDress  int      `json:"budgetDress"`
	BudgetMakeup int      `json:"budgetMakeup"`
}

type personaResponse struct {
	TypeCode               string   `json:"typeCode"`
	TypeName               string   `json:"typeName"`
	Description            string   `json:"description"`
	Tags                   []string `json:"tags"`
	RecommendedVendorStyle string   `json:"recommendedVendorCategory"`
	RecommendedDressStyle  string   `json:"recommendedDressStyle"`
	EntranceStyle          string   `json:"entranceStyle,omitempty"`
}

type budgetResponse struct {
	Studio int `json:"studio"`
	Dress  int `json:"dress"`
	Makeup int `json:"makeup"`
	Total  int `json:"total"`
}

type addOnResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PriceText string `json:"priceText"`
}

type vendorResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	BasePrice    string          `json:"basePrice"`
	PriceLabel   string          `json:"priceLabel,omitempty"`
	Image        string          `json:"image,omitempty"`
	Location     string          `json:"location,omitempty"`
	AddOns       []addOnResponse `json:"addOns,omitempty"`
	OtherOptions []string        `json:"otherOptions,omitempty"`
	PhoneNumber  string          `json:"phoneNumber,omitempty"`
	Instagram    string          `json:"instagram,omitempty"`
}

type vendorListResponse struct {
	Items []vendorResponse `json:"items"`
	Total int              `json:"total"`
	// FailedCategories lets the client tell "nothing matched" apart from
	// "a source was down".
	FailedCategories []string `json:"failedCategories,omitempty"`
}

type recommendationResponse struct {
	Studio *vendorResponse `json:"studio,omitempty"`
	Dress  *vendorResponse `json:"dress,omitempty"`
	Makeup *vendorResponse `json:"makeup,omitempty"`
}

type garmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Style    string `json:"style,omitempty"`
	ImageURL string `json:"imageUrl"`
}

type garmentListResponse struct {
	Items []garmentResponse `json:"items"`
	Total int               `json:"total"`
}

type measurementsResponse struct {
	ShoulderWidth float64 `json:"shoulderWidth"`
	WaistWidth    float64 `json:"waistWidth"`
	HipWidth      float64 `json:"hipWidth"`
	SHR           float64 `json:"shr"`
	WHR           float64 `json:"whr"`
}

type analysisResponse struct {
	BodyType               string                `json:"bodyType"`
	BodyTypeKey            string                `json:"bodyTypeKey,omitempty"`
	Confidence             float64               `json:"confidence,omitempty"`
	Analysis               string                `json:"analysis"`
	Measurements           *measurementsResponse `json:"measurements,omitempty"`
	RecommendedSilhouettes []string              `json:"recommendedSilhouettes"`
	AvoidSilhouettes       []string              `json:"avoidSilhouettes"`
	VisualizationImageURL  string                `json:"visualizationImageUrl,omitempty"`
}

type outcomeResponse struct {
	GarmentID    string `json:"garmentId"`
	Success      bool   `json:"success"`
	ImageURL     string `json:"imageUrl,omitempty"`
	ErrorMessage string `json:"error,omitempty"`
}

type fittingStateResponse struct {
	State            string            `json:"state"`
	HasPhoto         bool              `json:"hasPhoto"`
	PhotoFilename    string            `json:"photoFilename,omitempty"`
	Analysis         *analysisResponse `json:"analysis,omitempty"`
	SelectedGarments []string          `json:"selectedGarmentIds"`
	Outcomes         []outcomeResponse `json:"outcomes"`
}

type toggleResponse struct {
	Selected         bool     `json:"selected"`
	SelectedGarments []string `json:"selectedGarmentIds"`
}
