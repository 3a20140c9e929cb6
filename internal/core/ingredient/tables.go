package ingredient

// substitution 複合詞對應基底詞，順序即優先順序
type substitution struct {
	compound string
	base     string
}

// descriptorWords 會被整詞移除的描述詞
var descriptorWords = []string{
	"fresh", "dried", "chopped", "sliced", "minced", "grated", "ground",
	"whole", "canned", "frozen", "powdered", "organic", "extra", "virgin",
	"light", "dark", "raw", "cooked", "boiled", "roasted", "grilled",
	"boneless", "skinless", "lean", "fat", "free", "low", "reduced", "sodium",
}

// compoundSubstitutions 第一個被包含的 key 勝出，順序不可調整
var compoundSubstitutions = []substitution{
	{"chicken breast", "chicken"},
	{"chicken thighs", "chicken"},
	{"ground beef", "beef"},
	{"beef steak", "beef"},
	{"pork chop", "pork"},
	{"salmon fillet", "salmon"},
	{"tuna steak", "tuna"},
	{"white wine", "wine"},
	{"red wine", "wine"},
	{"apple cider vinegar", "vinegar"},
	{"balsamic vinegar", "vinegar"},
	{"olive oil", "oil"},
	{"vegetable oil", "oil"},
	{"soy sauce", "soy"},
	{"tomato sauce", "tomato"},
	{"tomato paste", "tomato"},
	{"cream cheese", "cheese"},
	{"cheddar cheese", "cheese"},
	{"parmesan cheese", "cheese"},
	{"mozzarella cheese", "cheese"},
}

// protectedCompounds 多字詞中保留原樣的片語
var protectedCompounds = []string{
	"bell pepper", "green beans", "sour cream", "cream cheese", "soy sauce",
}

// variantGroup 基底詞與其變體
type variantGroup struct {
	base     string
	variants []string
}

// baseVariants 比對規則四使用，只在一側等於基底詞時生效
var baseVariants = []variantGroup{
	{"chicken", []string{"chicken breast", "chicken thigh", "chicken wing"}},
	{"beef", []string{"ground beef", "beef steak", "beef roast"}},
	{"pork", []string{"pork chop", "pork loin", "pork shoulder"}},
	{"fish", []string{"salmon", "tuna", "cod", "haddock"}},
	{"milk", []string{"dairy milk", "whole milk", "skim milk"}},
	{"cheese", []string{"cheddar", "parmesan", "mozzarella", "gouda"}},
	{"bread", []string{"white bread", "whole wheat", "sourdough"}},
	{"rice", []string{"white rice", "brown rice", "basmati rice"}},
	{"pasta", []string{"spaghetti", "penne", "fettuccine", "macaroni"}},
	{"oil", []string{"olive oil", "vegetable oil", "canola oil"}},
	{"vinegar", []string{"white vinegar", "apple cider vinegar", "balsamic vinegar"}},
	{"wine", []string{"white wine", "red wine", "cooking wine"}},
}
