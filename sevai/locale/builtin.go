package locale

// Built-in templates, one entry per supported language.
var builtin = map[string]Templates{
	"English": {
		Greeting:           "Hello! I am SEV-AI, your health assistant. Please describe your symptoms so I can help you.",
		OutOfScope:         "I apologize, but I can only assist with health-related inquiries. Please describe any medical symptoms you are experiencing.",
		Emergency:          "⚠️ EMERGENCY ALERT: Your symptoms suggest a potential emergency. Please seek immediate medical attention or call emergency services (108).",
		Assessment:         "Based on your symptoms, this could be %s.",
		MoreInfo:           "I need a bit more information. Have you noticed any other symptoms like pain, fatigue, or nausea?",
		NextQuestion:       "I understand. To help me understand better, could you describe your main symptom and when it started?",
		AreYouExperiencing: "I see. Are you also experiencing %s?",
		AnyOtherSymptoms:   "Are you experiencing any other symptoms, such as fever or pain?",
	},
	"Tamil": {
		Greeting:           "வணக்கம்! நான் SEV-AI, உங்கள் சுகாதார உதவியாளர். உங்களுக்கு உதவ உங்கள் அறிகுறிகளை விளக்கவும்.",
		OutOfScope:         "மன்னிக்கவும், நான் ஆரோக்கியம் தொடர்பான கேள்விகளுக்கு மட்டுமே பதிலளிக்க முடியும். உங்கள் அறிகுறிகளை விவரிக்கவும்.",
		Emergency:          "⚠️ அவசர எச்சரிக்கை: உங்கள் அறிகுறிகள் அவசரநிலையைக் குறிக்கின்றன. தயவுசெய்து உடனடியாக மருத்துவ உதவியை நாடவும் அல்லது அவசர சேவைகளை (108) அழைக்கவும்.",
		Assessment:         "உங்கள் அறிகுறிகளின் அடிப்படையில், இது %s ஆக இருக்கலாம்.",
		MoreInfo:           "எனக்கு இன்னும் கொஞ்சம் தகவல் தேவை. வலி, சோர்வு அல்லது குமட்டல் போன்ற வேறு ஏதேனும் அறிகுறிகளை நீங்கள் கவனித்தீர்களா?",
		NextQuestion:       "புரிந்துகொண்டேன். நன்றாகப் புரிந்துகொள்ள உதவ, உங்கள் முக்கிய அறிகுறி என்ன மற்றும் அது எப்போது தொடங்கியது என்று விவரிக்க முடியுமா?",
		AreYouExperiencing: "எனக்குத் தெரிகிறது. உங்களுக்கும் %s இருக்கிறதா?",
		AnyOtherSymptoms:   "காய்ச்சல் அல்லது வலி போன்ற வேறு ஏதேனும் அறிகுறிகளை நீங்கள் அனுபவிக்கிறீர்களா?",
	},
	"Hindi": {
		Greeting:           "नमस्ते! मैं SEV-AI हूँ, आपका स्वास्थ्य सहायक। कृपया अपने लक्षणों का वर्णन करें ताकि मैं आपकी सहायता कर सकूँ।",
		OutOfScope:         "क्षमा करें, मैं केवल स्वास्थ्य संबंधी प्रश्नों का उत्तर दे सकता हूँ। कृपया अपने लक्षणों का वर्णन करें।",
		Emergency:          "⚠️ आपातकालीन अलर्ट: आपके लक्षण आपातकाल का संकेत देते हैं। कृपया तत्काल चिकित्सा सहायता लें या आपातकालीन सेवाओं (108) को कॉल करें।",
		Assessment:         "आपके लक्षणों के आधार पर, यह %s हो सकता है।",
		MoreInfo:           "मुझे थोड़ी और जानकारी चाहिए। क्या आपने दर्द, थकान या मतली जैसे किसी अन्य लक्षण पर ध्यान दिया है?",
		NextQuestion:       "मैं समझ गया। मुझे बेहतर समझने में मदद करने के लिए, क्या आप अपने मुख्य लक्षण का वर्णन कर सकते हैं और यह कब शुरू हुआ?",
		AreYouExperiencing: "मैं देखता हूँ। क्या आप %s भी अनुभव कर रहे हैं?",
		AnyOtherSymptoms:   "क्या आप किसी अन्य लक्षण का अनुभव कर रहे हैं, जैसे बुखार या दर्द?",
	},
	"Malayalam": {
		Greeting:           "നമസ്കാരം! ഞാൻ SEV-AI, നിങ്ങളുടെ ആരോഗ്യ സഹായി. നിങ്ങളെ സഹായിക്കാൻ നിങ്ങളുടെ ലക്ഷണങ്ങൾ വിശദീകരിക്കുക.",
		OutOfScope:         "ക്ഷമിക്കണം, എനിക്ക് ആരോഗ്യ സംബന്ധമായ ചോദ്യങ്ങൾക്ക് മാത്രമേ മറുപടി നൽകാൻ കഴിയൂ. നിങ്ങളുടെ ലക്ഷണങ്ങൾ വിവരിക്കുക.",
		Emergency:          "⚠️ അടിയന്തര മുന്നറിയിപ്പ്: നിങ്ങളുടെ ലക്ഷണങ്ങൾ ഒരു അടിയന്തര സാഹചര്യത്തെ സൂചിപ്പിക്കുന്നു. ദയവായി ഉടൻ വൈദ്യസഹായം തേടുക അല്ലെങ്കിൽ അടിയന്തര സേവനങ്ങളെ (108) വിളിക്കുക.",
		Assessment:         "നിങ്ങളുടെ ലക്ഷണങ്ങൾ അടിസ്ഥാനമാക്കി, ഇത് %s ആകാൻ സാധ്യതയുണ്ട്.",
		MoreInfo:           "എനിക്ക് കുറച്ചുകൂടി വിവരങ്ങൾ വേണം. വേദന, തളർച്ച അല്ലെങ്കിൽ ഓക്കാനം പോലുള്ള മറ്റ് ലക്ഷണങ്ങൾ ശ്രദ്ധിച്ചോ?",
		NextQuestion:       "എനിക്ക് മനസ്സിലായി. നന്നായി മനസ്സിലാക്കാൻ സഹായിക്കുന്നതിന്, നിങ്ങളുടെ പ്രധാന ലക്ഷണം എന്താണെന്നും അത് എപ്പോൾ തുടങ്ങിയെന്നും വിവരിക്കാമോ?",
		AreYouExperiencing: "എനിക്ക് മനസ്സിലാകുന്നു. നിങ്ങൾക്ക് %s അനുഭവപ്പെടുന്നുണ്ടോ?",
		AnyOtherSymptoms:   "പനി അല്ലെങ്കിൽ വേദന പോലുള്ള മറ്റ് ലക്ഷണങ്ങൾ നിങ്ങൾ അനുഭവിക്കുന്നുണ്ടോ?",
	},
}
