package domain

// PersonaResult is the immutable outcome of the survey: a 4-character type
// code, the persona record looked up for it, and the entrance-style
// narrative derived from the guest-scale and ceremony-style axes.
type PersonaResult struct {
	TypeCode               string
	TypeName               string
	Description            string
	Tags                   []string
	RecommendedVendorStyle string
	RecommendedDressStyle  string
	EntranceStyle          string
}

// TypeCode derives the 4-letter code from the four primary axes. One
// character per axis, each drawn from a fixed 2-symbol alphabet:
// G/S (감성/실리), B/P (규모/프라이빗), C/M (클래식/모던), L/F (주도/위임).
// Mood images and budgets never influence the code.
func TypeCode(a Answers) string {
	code := make([]byte, 4)

	code[0] = 'S'
	if a.PhotoBudget == PhotoBudgetEmotional {
		code[0] = 'G'
	}
	code[1] = 'P'
	if a.GuestCount == GuestScaleLarge {
		code[1] = 'B'
	}
	code[2] = 'M'
	if a.Style == CeremonyClassic {
		code[2] = 'C'
	}
	code[3] = 'F'
	if a.PrepStyle == PrepLead {
		code[3] = 'L'
	}

	return string(code)
}

// Resolve maps survey answers to their persona. Resolution is synchronous
// and total: a code missing from the table falls back to the default
// persona, and a missing entrance combination resolves to an empty string.
func Resolve(a Answers) PersonaResult {
	code := TypeCode(a)

	persona, ok := personaTable[code]
	if !ok {
		persona = defaultPersona
	}

	return PersonaResult{
		TypeCode:               code,
		TypeName:               persona.name,
		Description:            persona.description,
		Tags:                   append([]string(nil), persona.tags...),
		RecommendedVendorStyle: persona.vendorStyle,
		RecommendedDressStyle:  persona.dressStyle,
		EntranceStyle:          entranceStyles[code[1:3]],
	}
}

// AxisLabel describes one letter of the type code for display.
type AxisLabel struct {
	Title string
	Sub   string
}

// AxisLabels maps each code character to its display label.
var AxisLabels = map[string]AxisLabel{
	"G": {Title: "감성", Sub: "Emotional"},
	"S": {Title: "실리", Sub: "Practical"},
	"B": {Title: "규모", Sub: "Big Wedding"},
	"P": {Title: "프라이빗", Sub: "Private"},
	"C": {Title: "클래식", Sub: "Classic"},
	"M": {Title: "트렌디", Sub: "Modern"},
	"L": {Title: "주도", Sub: "Lead"},
	"F": {Title: "위임", Sub: "Follow"},
}

type persona struct {
	name        string
	description string
	tags        []string
	vendorStyle string
	dressStyle  string
}

// defaultPersona answers any code the table does not cover. Resolution must
// never fail, so the fallback is a full record rather than an error.
var defaultPersona = persona{
	name: "로맨틱 드리머",
	description: "당신은 감성적인 순간과 클래식한 아름다움을 중요하게 생각합니다. " +
		"영화 속 주인공 같은 결혼식을 꿈꾸는 당신에게 딱 맞는 스타일을 추천해요.\n\n" +
		"준비 과정 하나하나가 추억이 되는 타입이라, 업체 선택에서도 분위기와 색감이 " +
		"마음에 와닿는 곳을 만나야 후회가 없습니다.",
	tags:        []string{"#로맨틱", "#클래식", "#감성충만"},
	vendorStyle: "따뜻한 색감의 인물 중심 스튜디오",
	dressStyle:  "풍성한 벨라인 드레스",
}

// personaTable is the static lookup from type code to persona record.
// 코드 전수 16개를 모두 정의하지만, 혹시 모를 누락은 defaultPersona 로 흡수한다.
var personaTable = map[string]persona{
	"GBCL": defaultPersona,
	"GBCF": {
		name: "우아한 클래식 뮤즈",
		description: "화려한 대형 예식과 유행을 타지 않는 정석 스타일을 사랑하지만, " +
			"세세한 진행은 믿을 수 있는 전문가에게 맡기고 싶은 타입입니다.\n\n" +
			"플래너와의 합이 가장 중요한 유형이라, 상담에서 취향을 정확히 읽어주는 " +
			"업체를 만나면 준비 스트레스가 크게 줄어듭니다.",
		tags:        []string{"#우아함", "#호텔웨딩", "#맡기는편안함"},
		vendorStyle: "호텔 본식 전문 프리미엄 스튜디오",
		dressStyle:  "실크 소재의 정통 A라인 드레스",
	},
	"GBML": {
		name: "화려한 트렌드세터",
		description: "남들과 다른 힙한 결혼식을 큰 무대에서 직접 연출하고 싶은 " +
			"타입입니다. 최신 유행을 빠르게 읽고, 마음에 드는 연출은 비용이 들어도 " +
			"과감하게 투자합니다.\n\n" +
			"레퍼런스를 직접 모아 업체와 디테일을 조율할 때 가장 만족도가 높습니다.",
		tags:        []string{"#트렌디", "#SNS감성", "#주도적"},
		vendorStyle: "감각적인 색감의 시네마틱 스튜디오",
		dressStyle:  "과감한 실루엣의 머메이드 드레스",
	},
	"GBMF": {
		name: "스포트라이트 뮤즈",
		description: "화려하고 세련된 결혼식의 주인공이 되고 싶지만, 복잡한 준비 " +
			"과정은 전문가의 손에 맡기는 타입입니다.\n\n" +
			"토탈 디렉팅이 가능한 업체와 만나면 큰 그림만 함께 잡아도 원하는 " +
			"무드가 완성됩니다.",
		tags:        []string{"#모던글램", "#대형웨딩", "#디렉팅추천"},
		vendorStyle: "토탈 디렉팅형 모던 스튜디오",
		dressStyle:  "비즈 디테일의 글램 드레스",
	},
	"GPCL": {
		name: "감성 빈티지 아티스트",
		description: "가까운 사람들과의 오붓한 예식에서 클래식한 무드를 직접 " +
			"만들어가는 타입입니다. 촬영 소품 하나, 식순 하나까지 본인의 취향이 " +
			"묻어나야 만족합니다.\n\n" +
			"소규모 예식 경험이 많고 자율도가 높은 업체와 잘 맞습니다.",
		tags:        []string{"#스몰웨딩", "#빈티지", "#디테일장인"},
		vendorStyle: "필름 감성의 소규모 전문 스튜디오",
		dressStyle:  "레이스 디테일의 빈티지 드레스",
	},
	"GPCF": {
		name: "조용한 낭만주의자",
		description: "프라이빗한 공간에서 우아하고 따뜻한 예식을 올리고 싶은 " +
			"타입입니다. 낭만은 포기할 수 없지만 준비 과정의 잡음은 최소화하고 " +
			"싶어 합니다.\n\n" +
			"패키지 구성이 안정적인 업체를 고르면 마음 편히 그날의 감동에 " +
			"집중할 수 있습니다.",
		tags:        []string{"#프라이빗", "#클래식", "#편안한준비"},
		vendorStyle: "하우스 웨딩 전문 감성 스튜디오",
		dressStyle:  "은은한 광택의 미카도 실크 드레스",
	},
	"GPML": {
		name: "감각적인 미니멀리스트",
		description: "군더더기 없는 공간에서 소수의 하객과 세련된 예식을 직접 " +
			"설계하는 타입입니다. 여백이 살아 있는 사진, 정제된 연출에 가장 크게 " +
			"반응합니다.\n\n" +
			"과한 꾸밈보다 라인과 톤이 정확한 업체를 만나야 취향이 살아납니다.",
		tags:        []string{"#미니멀", "#모던", "#주관뚜렷"},
		vendorStyle: "여백이 살아있는 미니멀 스튜디오",
		dressStyle:  "클린 라인의 슬립 드레스",
	},
	"GPMF": {
		name: "무드 컬렉터",
		description: "트렌디한 무드의 스몰 웨딩을 꿈꾸지만 실행은 감각 있는 " +
			"전문가에게 맡기고 싶은 타입입니다. 마음에 드는 레퍼런스를 모아 " +
			"보여주는 것만으로 충분합니다.\n\n" +
			"취향 해석력이 좋은 디렉터형 업체와 만났을 때 결과물이 가장 좋습니다.",
		tags:        []string{"#무드보드", "#스몰웨딩", "#감각위임"},
		vendorStyle: "레퍼런스 해석이 좋은 부티크 스튜디오",
		dressStyle:  "유려한 드레이프의 세미 머메이드",
	},
	"SBCL": {
		name: "꼼꼼한 정석파 플래너",
		description: "대형 예식을 정석대로, 그러나 비용은 한 푼도 허투루 쓰지 않고 " +
			"직접 챙기는 타입입니다. 견적 비교표를 만들고 옵션 구성까지 계산이 " +
			"끝나야 계약합니다.\n\n" +
			"가격 구성이 투명하고 옵션 추가 비용이 명확한 업체와 잘 맞습니다.",
		tags:        []string{"#꼼꼼비교", "#정석웨딩", "#가성비"},
		vendorStyle: "견적이 투명한 대형 본식 스튜디오",
		dressStyle:  "활용도 높은 클래식 A라인",
	},
	"SBCF": {
		name: "스마트 클래식 신부",
		description: "검증된 정석 코스를 합리적인 가격의 패키지로 해결하고 싶은 " +
			"타입입니다. 유행보다는 실패하지 않는 선택을 우선합니다.\n\n" +
			"후기가 탄탄한 패키지 상품 위주로 고르면 만족도가 높습니다.",
		tags:        []string{"#패키지추천", "#클래식", "#실속"},
		vendorStyle: "후기 검증된 패키지형 스튜디오",
		dressStyle:  "체형 커버가 좋은 벨라인",
	},
	"SBML": {
		name: "실속형 트렌드 리더",
		description: "유행하는 연출은 챙기되 거품은 걷어내고 싶은 타입입니다. " +
			"신상 스타일도 가격 대비 효율이 확인되어야 선택합니다.\n\n" +
			"트렌드를 빠르게 반영하면서도 기본 단가가 합리적인 신생 업체를 " +
			"발굴하는 재미가 있는 유형입니다.",
		tags:        []string{"#트렌드", "#합리소비", "#발품"},
		vendorStyle: "신진 감각의 합리적인 모던 스튜디오",
		dressStyle:  "트렌디한 미니멀 머메이드",
	},
	"SBMF": {
		name: "효율 중시 모던 신부",
		description: "세련된 결과물은 원하지만 과정에 들이는 시간은 최소화하고 " +
			"싶은 타입입니다. 결정 기준이 명확해 상담이 빠르게 끝납니다.\n\n" +
			"표준화된 상품 구성과 빠른 커뮤니케이션을 갖춘 업체가 잘 맞습니다.",
		tags:        []string{"#효율", "#모던", "#빠른결정"},
		vendorStyle: "프로세스가 깔끔한 모던 스튜디오",
		dressStyle:  "군더더기 없는 H라인 드레스",
	},
	"SPCL": {
		name: "알뜰한 살롱 웨딩러",
		description: "소규모 예식의 장점을 비용 효율로 극대화하는 타입입니다. " +
			"하객 수를 줄인 만큼 한 사람 한 사람에게 정성을 쓰고, 지출은 직접 " +
			"통제합니다.\n\n" +
			"불필요한 기본 옵션을 빼고 구성할 수 있는 유연한 업체와 잘 맞습니다.",
		tags:        []string{"#스몰웨딩", "#알뜰", "#직접준비"},
		vendorStyle: "옵션 조정이 자유로운 소규모 스튜디오",
		dressStyle:  "가벼운 소재의 세미 드레스",
	},
	"SPCF": {
		name: "미니멀 실속파",
		description: "작고 단정한 예식을 검증된 패키지로 간결하게 끝내고 싶은 " +
			"타입입니다. 준비 기간이 짧아도 무리가 없습니다.\n\n" +
			"스몰 웨딩 전문 패키지를 보유한 업체를 고르면 가장 효율적입니다.",
		tags:        []string{"#간결", "#프라이빗", "#패키지"},
		vendorStyle: "스몰 웨딩 패키지 전문 스튜디오",
		dressStyle:  "단정한 보트넥 A라인",
	},
	"SPML": {
		name: "합리적인 힙스터",
		description: "남다른 감각의 스몰 웨딩을 최소 비용으로 직접 기획하는 " +
			"타입입니다. 대관, 촬영, 드레스를 각각 발굴해 조합하는 데 능합니다.\n\n" +
			"개별 계약이 가능하고 레퍼런스 협의가 열려 있는 업체와 잘 맞습니다.",
		tags:        []string{"#힙스터", "#DIY웨딩", "#합리적"},
		vendorStyle: "개별 계약형 로케이션 스냅 스튜디오",
		dressStyle:  "캐주얼한 투피스 셋업",
	},
	"SPMF": {
		name: "가성비 스마트 예신",
		description: "트렌디한 스몰 웨딩을 전문가 큐레이션으로 효율 있게 끝내는 " +
			"타입입니다. 선택지는 세 개면 충분하고, 그 안에서 가장 합리적인 것을 " +
			"고릅니다.\n\n" +
			"큐레이션형 플랫폼이나 추천 서비스 활용도가 가장 높은 유형입니다.",
		tags:        []string{"#가성비", "#큐레이션", "#스마트"},
		vendorStyle: "큐레이션형 모던 스냅 스튜디오",
		dressStyle:  "간결한 미니멀 슬립 드레스",
	},
}

// entranceStyles narrates the recommended entrance, keyed by the 2nd+3rd
// code characters (guest scale x ceremony style). Unknown combinations
// resolve to an empty string, never an error.
var entranceStyles = map[string]string{
	"BC": "풀 오케스트라 연주와 함께 긴 버진로드를 걷는 정통 그랜드 입장. " +
		"조명이 한 줄로 따라오는 클래식 스포트라이트 연출이 잘 어울립니다.",
	"BM": "하객 전체가 일어나 맞이하는 오프닝 퍼포먼스형 입장. " +
		"미디어 파사드나 드라이아이스 연출로 무대 같은 첫 등장을 만들 수 있습니다.",
	"PC": "현악 3중주의 잔잔한 연주 속에 가까운 하객 사이를 천천히 걷는 입장. " +
		"촛불과 생화 캔들로드가 소규모 공간의 밀도를 살려 줍니다.",
	"PM": "자연광이 드는 공간에서 양가 인사와 함께 시작하는 캐주얼 동시 입장. " +
		"격식을 덜어낸 만큼 두 사람의 표정이 살아나는 연출입니다.",
}
