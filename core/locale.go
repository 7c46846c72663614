package orchestration

// localeCopy is the fixed client-side messaging for one locale. It only
// covers locally produced entries; assistant replies arrive already localized
// by the backend.
type localeCopy struct {
	errorPrefix         string
	noSpeech            string
	invalidCode         string
	malformedResponse   string
	verificationExpired string
}

var locales = map[string]localeCopy{
	"en-IN": {
		errorPrefix:         "Error: ",
		noSpeech:            "No speech detected. Please try again.",
		invalidCode:         "Invalid OTP. Please try again.",
		malformedResponse:   "The assistant returned an empty response. Please try again.",
		verificationExpired: "The OTP session has expired. Please start the transaction again.",
	},
	"hi-IN": {
		errorPrefix:         "त्रुटि: ",
		noSpeech:            "कोई आवाज़ नहीं मिली। कृपया फिर से बोलें।",
		invalidCode:         "OTP ग़लत है। कृपया फिर से प्रयास करें।",
		malformedResponse:   "सहायक से कोई उत्तर नहीं मिला। कृपया फिर से प्रयास करें।",
		verificationExpired: "OTP सत्र समाप्त हो गया है। कृपया लेन-देन फिर से शुरू करें।",
	},
}

// copyForLanguage resolves the client-side copy for a locale, falling back to
// the default locale for anything unrecognized.
func copyForLanguage(language string) localeCopy {
	if messages, ok := locales[language]; ok {
		return messages
	}
	return locales[DefaultLanguage]
}
