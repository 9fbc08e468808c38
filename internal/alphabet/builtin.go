package alphabet

// Latin is the fallback alphabet for unknown identifiers.
const Latin = "English"

var latinLetters = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
}

var builtinOrder = []string{
	"Russian", "English", "Spanish", "French", "Italian", "German",
	"Polish", "Arabic", "Hebrew", "Hindi", "Chinese", "Japanese",
	"Syriac", "Amharic", "Tibetan", "Burmese", "Khmer", "Lao",
	"Thai", "Sinhala", "Lepcha", "Limbu", "Cherokee",
}

var builtin = map[string][]string{
	"Russian": {
		"А", "Б", "В", "Г", "Д", "Е", "Ё", "Ж", "З", "И", "Й", "К",
		"Л", "М", "Н", "О", "П", "Р", "С", "Т", "У", "Ф", "Х", "Ц",
		"Ч", "Ш", "Щ", "Ъ", "Ы", "Ь", "Э", "Ю", "Я",
	},
	"English": latinLetters,
	"Spanish": {
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
		"M", "N", "Ñ", "O", "P", "Q", "R", "S", "T", "U", "V", "W",
		"X", "Y", "Z",
	},
	"French": {
		"A", "À", "Â", "Æ", "B", "C", "Ç", "D", "E", "É", "È", "Ê",
		"Ë", "F", "G", "H", "I", "Î", "Ï", "J", "K", "L", "M", "N",
		"O", "Ô", "Œ", "P", "Q", "R", "S", "T", "U", "Ù", "Û", "Ü",
		"V", "W", "X", "Y", "Ÿ", "Z",
	},
	"Italian": {
		"A", "B", "C", "D", "E", "È", "É", "F", "G", "H", "I", "Ì",
		"Í", "Î", "J", "K", "L", "M", "N", "O", "Ò", "Ó", "P", "Q",
		"R", "S", "T", "U", "Ù", "Ú", "V", "W", "X", "Y", "Z",
	},
	"German": {
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L",
		"M", "N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X",
		"Y", "Z", "Ä", "Ö", "Ü", "ẞ",
	},
	"Polish": {
		"A", "Ą", "B", "C", "Ć", "D", "E", "Ę", "F", "G", "H", "I",
		"J", "K", "L", "Ł", "M", "N", "Ń", "O", "Ó", "P", "Q", "R",
		"S", "Ś", "T", "U", "V", "W", "X", "Y", "Z", "Ź", "Ż",
	},
	"Arabic": {
		"ا", "ب", "ت", "ث", "ج", "ح", "خ", "د", "ذ", "ر", "ز", "س",
		"ش", "ص", "ض", "ط", "ظ", "ع", "غ", "ف", "ق", "ك", "ل", "م",
		"ن", "ه", "و", "ي",
	},
	"Hebrew": {
		"א", "ב", "ג", "ד", "ה", "ו", "ז", "ח", "ט", "י", "כ", "ל",
		"מ", "נ", "ס", "ע", "פ", "צ", "ק", "ר", "ש", "ת",
	},
	"Hindi": {
		"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ", "क", "ख",
		"ग", "घ", "ङ", "च", "छ", "ज", "झ", "ञ", "ट", "ठ", "ड", "ढ",
		"ण", "त", "थ", "द", "ध", "न", "प", "फ", "ब", "भ", "म", "य",
		"र", "ल", "व", "श", "ष", "स", "ह",
	},
	"Chinese": {
		"的", "一", "是", "了", "我", "不", "在", "人", "有", "这", "中", "大",
		"来", "上", "国", "个", "到", "说", "们", "为", "子", "和", "你", "地",
		"出", "道", "也", "时", "要", "就", "下", "得", "里", "后", "生", "会",
		"自", "着", "去", "之", "过", "家", "学", "对", "多", "天", "小", "心",
		"只", "如", "新", "见", "分", "因", "经", "其",
	},
	"Japanese": {
		"あ", "い", "う", "え", "お", "か", "き", "く", "け", "こ", "さ", "し",
		"す", "せ", "そ", "た", "ち", "つ", "て", "と", "な", "に", "ぬ", "ね",
		"の", "は", "ひ", "ふ", "へ", "ほ", "ま", "み", "む", "め", "も", "や",
		"ゆ", "よ", "ら", "り", "る", "れ", "ろ", "わ", "を", "ん",
	},
	"Syriac": {
		"ܐ", "ܒ", "ܓ", "ܕ", "ܗ", "ܘ", "ܙ", "ܚ", "ܛ", "ܝ", "ܟ", "ܠ",
		"ܡ", "ܢ", "ܣ", "ܥ", "ܦ", "ܨ", "ܩ", "ܪ", "ܫ", "ܬ",
	},
	"Amharic": {
		"ሀ", "ለ", "መ", "ሠ", "ረ", "ሰ", "ሸ", "ቀ", "በ", "ተ", "ቸ", "ኀ",
		"ነ", "ኘ", "አ", "ከ", "ወ", "ዐ", "ዘ", "ዠ", "የ", "ደ", "ጀ", "ገ",
		"ጐ", "ጠ", "ጨ", "ጰ", "ጸ", "ፀ", "ፈ", "ፐ",
	},
	"Tibetan": {
		"ཀ", "ཁ", "ག", "ང", "ཅ", "ཆ", "ཇ", "ཉ", "ཏ", "ཐ", "ད", "ན",
		"པ", "ཕ", "བ", "མ", "ཙ", "ཚ", "ཛ", "ཝ", "ཞ", "ཟ", "འ", "ཡ",
		"ར", "ལ", "ཤ", "ས", "ཧ", "ཨ",
	},
	"Burmese": {
		"က", "ခ", "ဂ", "ဃ", "င", "စ", "ဆ", "ဇ", "ဈ", "ည", "ဋ", "ဌ",
		"ဍ", "ဎ", "ဏ", "တ", "ထ", "ဒ", "ဓ", "န", "ပ", "ဖ", "ဗ", "ဘ",
		"မ", "ယ", "ရ", "လ", "ဝ", "သ", "ဟ", "ဠ", "အ",
	},
	"Khmer": {
		"ក", "ខ", "គ", "ឃ", "ង", "ច", "ឆ", "ជ", "ឈ", "ញ", "ដ", "ឋ",
		"ឌ", "ឍ", "ណ", "ត", "ថ", "ទ", "ធ", "ន", "ប", "ផ", "ព", "ភ",
		"ម", "យ", "រ", "ល", "វ", "ស", "ហ", "ឡ", "អ",
	},
	"Lao": {
		"ກ", "ຂ", "ຄ", "ງ", "ຈ", "ສ", "ຊ", "ຍ", "ດ", "ຕ", "ຖ", "ທ",
		"ນ", "ບ", "ປ", "ຜ", "ຝ", "ພ", "ຟ", "ມ", "ຢ", "ຣ", "ລ", "ວ",
		"ຫ", "ອ", "ຮ",
	},
	"Thai": {
		"ก", "ข", "ค", "ฆ", "ง", "จ", "ฉ", "ช", "ซ", "ฌ", "ญ", "ฎ",
		"ฏ", "ฐ", "ฑ", "ฒ", "ณ", "ด", "ต", "ถ", "ท", "ธ", "น", "บ",
		"ป", "ผ", "พ", "ภ", "ม", "ย", "ร", "ล", "ว", "ศ", "ษ", "ส",
		"ห", "ฬ", "อ", "ฮ",
	},
	"Sinhala": {
		"අ", "ආ", "ඇ", "ඈ", "ඉ", "ඊ", "උ", "ඌ", "එ", "ඒ", "ඔ", "ඕ",
		"ක", "ඛ", "ග", "ඝ", "ඞ", "ච", "ඡ", "ජ", "ඣ", "ඤ", "ට", "ඨ",
		"ඩ", "ඪ", "ණ", "ත", "ථ", "ද", "ධ", "න", "ප", "ඵ", "බ", "භ",
		"ම", "ය", "ර", "ල", "ව", "ශ", "ෂ", "ස", "හ", "ළ", "ෆ",
	},
	"Lepcha": {
		"ᰛ", "ᰜ", "ᰝ", "ᰞ", "ᰟ", "ᰠ", "ᰡ", "ᰢ", "ᰣ", "ᰤ", "ᰥ", "ᰦ",
		"ᰧ", "ᰨ", "ᰩ", "ᰪ", "ᰫ", "ᰬ", "ᰭ", "ᰮ", "ᰯ", "ᰰ", "ᰱ", "ᰲ",
		"ᰳ", "ᰴ",
	},
	"Limbu": {
		"ᤀ", "ᤁ", "ᤂ", "ᤃ", "ᤄ", "ᤅ", "ᤆ", "ᤇ", "ᤈ", "ᤉ", "ᤊ", "ᤋ",
		"ᤌ", "ᤍ", "ᤎ", "ᤏ", "ᤐ", "ᤑ", "ᤒ", "ᤓ", "ᤔ", "ᤕ", "ᤖ", "ᤗ",
		"ᤘ", "ᤙ",
	},
	"Cherokee": {
		"Ꭰ", "Ꭱ", "Ꭲ", "Ꭳ", "Ꭴ", "Ꭵ", "Ꭶ", "Ꭷ", "Ꭸ", "Ꭹ", "Ꭺ", "Ꭻ",
		"Ꭼ", "Ꭽ", "Ꭾ", "Ꭿ", "Ꮀ", "Ꮁ", "Ꮂ", "Ꮃ", "Ꮄ", "Ꮅ", "Ꮆ", "Ꮇ",
		"Ꮈ", "Ꮉ", "Ꮊ", "Ꮋ", "Ꮌ", "Ꮍ",
	},
}
