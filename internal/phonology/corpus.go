package phonology

// TrainingCorpus is the fixed set of example words the transition
// model is built from. Stress marks and length signs are ordinary
// symbols to the model; the orthography pass respells them later.
var TrainingCorpus = []string{
	"furˈvodaj", "ʒal", "pɛˈtɑse", "patˈpøbʃe", "ˈsiwpɑj", "giʒ", "ʒɔj",
	"ˌʒypørˈdalkæ", "zɑˈsoker", "ˌpytpuˈvuldyj", "darˈfylke", "ʒawˈʃittud",
	"ˈgoge", "sɑr", "piˈtøtor", "se", "vɔʃ", "ha", "ty", "til",
	"ˌdyzuˈkɛldøl", "ˌbɔjfahˈkagu", "bɑv", "ˈdukbær", "pawˈpuwpi", "daj",
	"ˈbɔpfɛ", "vɑ", "feˈfopæv", "ˈseʒtoj", "ˌkɑsaˈkylbø", "ˈtɔwzi", "kor",
	"zɛjˈtorfa", "pøpˈgɔkod", "ˌsattɑʃˈpɔʃke", "zyj", "ɲoːp", "fuː", "jeːs",
	"ˈnɑːwpɛ", "wɑː", "vunˈtamlyᵑg", "sas", "bøː", "pɔ", "job", "ˈɲiwvi",
	"ᵑguː", "mɑːɣ", "ɲøːɲ", "teː", "ˈbɔːŋy", "voː", "niː", "ˈulke", "ɔː",
	"ˈgoːmyː", "ˈniːvom", "ˈjaːlø", "møm", "dɑːm", "nem", "ˈøːʒnɔ", "tæʃ",
	"fonˈʒæmwɑŋ", "ɣot", "ta", "ɲuː", "mɛːv", "ᵑgɛː", "zun", "ˈliʃkɔ", "vu",
	"ɬøɲ", "mæʃ", "bø", "zyːn", "gæm", "peː", "ˈvuyːm", "toː", "wo", "ken",
	"baː", "mɛᵑg", "nɑːt", "ˈɑmsu", "nɑː", "tu", "ˈøːɣjɑt", "ˈᵑgɔgne", "ˈnue",
	"ˈmɛrgi", "ɲøᵑg", "git", "ɬæ", "ɣa", "lim", "fi", "ˈjunly", "ɲal", "ʒøː",
	"pøː", "siː", "ɲo", "ˈpoːgøːm", "nohˈmærkaː", "aˈpɛːmwof", "weː",
	"ʃɑːˈʒoːgwiː", "faː", "ˈløːwgoː", "ɔ", "mɔ", "ᵐbaːn", "noːm", "ˈlavviː",
	"ˈguwpæ", "ʒygˈmyʃviː", "ɣeː", "ʒeːŋ", "ʃeɲ", "gæː", "ɣi", "nu", "peːp",
	"ˈaːdfyː", "ˈpætmuz", "ˈʃerpum", "ɬæː", "od", "ˈguʒɲyː", "ʒaː",
	"ˈɬømpɔː", "lo", "ˈzezu", "piː", "ɔːz", "zoː", "vɔ", "ɑ", "tuː", "næf",
	"en", "ˈɬuːʃvo", "ˈtiːllaː", "zæ", "ʃæː", "pab", "ɲiː", "ᵐbaːs", "ˈmamnæː",
	"føm", "ˈjɛmuːz", "yː", "myː",
}
