// Package i18n provides the two UI string catalogs (English and Hindi)
// selected by the language preference.
package i18n

import (
	"fmt"

	"github.com/rajannraj/rtomock/internal/prefs"
)

// Catalog looks up UI strings for one language.
type Catalog struct {
	lang    prefs.Language
	strings map[string]string
}

// For returns the catalog for lang, falling back to English.
func For(lang prefs.Language) Catalog {
	if lang == prefs.Hindi {
		return Catalog{lang: prefs.Hindi, strings: hindi}
	}
	return Catalog{lang: prefs.English, strings: english}
}

// Language returns the catalog's language.
func (c Catalog) Language() prefs.Language { return c.lang }

// T returns the string for key formatted with args. Keys missing from the
// active catalog fall back to English, then to the key itself.
func (c Catalog) T(key string, args ...any) string {
	s, ok := c.strings[key]
	if !ok {
		s, ok = english[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(s, args...)
	}
	return s
}

// Keys returns every key of the English catalog.
func Keys() []string {
	keys := make([]string, 0, len(english))
	for k := range english {
		keys = append(keys, k)
	}
	return keys
}

var english = map[string]string{
	"app.name":    "RTO Mock Test",
	"app.tagline": "Learner licence practice test",

	"welcome.prompt": "Press any key to begin",

	"home.title":    "Home",
	"home.start":    "Start Mock Test",
	"home.settings": "Settings",
	"home.quit":     "Quit",
	"home.intro":    "%d questions, %d minutes. Score %d%% to pass.",

	"settings.title":       "Settings",
	"settings.theme":       "Theme",
	"settings.language":    "Language",
	"settings.dark":        "Dark",
	"settings.light":       "Light",
	"settings.english":     "English",
	"settings.hindi":       "हिन्दी",
	"settings.save_failed": "Could not save preferences: %v",

	"difficulty.title":  "Choose your level",
	"difficulty.meta":   "%d Questions • %d Mins",
	"difficulty.easy":   "Easy",
	"difficulty.medium": "Medium",
	"difficulty.hard":   "Difficult",
	"difficulty.failed": "Could not start the test: %v",

	"details.title": "Enter your details",
	"details.name":  "Full name",
	"details.hint":  "This name will appear on your certificate",
	"details.back":  "Back to difficulty selection",
	"details.level": "Level: %s",

	"question.counter":  "Question %d of %d",
	"question.answered": "%d answered",
	"question.previous": "Previous",
	"question.next":     "Next",
	"question.finish":   "Finish",
	"question.sign":     "Road sign: %s",
	"question.pick":     "Select an answer to continue",
	"question.time":     "Time left %s",

	"result.title":          "Test Result",
	"result.passed":         "Test Passed!",
	"result.failed":         "Test Failed",
	"result.timed_out":      "Time is up!",
	"result.score":          "Score",
	"result.grade":          "Result",
	"result.pass_mark":      "Pass Mark",
	"result.band.excellent": "Excellent!",
	"result.band.pass":      "Passed",
	"result.band.fail":      "Failed",
	"result.excellent":      "You're fully ready for the RTO test.",
	"result.pass":           "Good job! A little more practice will help.",
	"result.fail":           "Practice required. Please study the signs again.",
	"result.certificate":    "Your Certificate",
	"result.download":       "Download certificate",
	"result.saved":          "Certificate saved to %s",
	"result.export_failed":  "Could not save certificate: %v",
	"result.review":         "Review answers",
	"result.new_test":       "Take another test",

	"review.title":   "Review Answers",
	"review.skipped": "Not answered",
	"review.back":    "Back to result",
	"review.item":    "%d. %s",

	"key.back":     "Back",
	"key.quit":     "Quit",
	"key.navigate": "Navigate",
	"key.select":   "Select",
	"key.choose":   "Choose",
	"key.next":     "Next",
	"key.previous": "Previous",
	"key.scroll":   "Scroll",
	"key.toggle":   "Toggle",
	"key.review":   "Review",
	"key.new":      "New test",
	"key.download": "Download",
	"key.start":    "Start",
}

var hindi = map[string]string{
	"app.name":    "आरटीओ मॉक टेस्ट",
	"app.tagline": "लर्नर लाइसेंस अभ्यास परीक्षा",

	"welcome.prompt": "शुरू करने के लिए कोई भी कुंजी दबाएँ",

	"home.title":    "होम",
	"home.start":    "मॉक टेस्ट शुरू करें",
	"home.settings": "सेटिंग्स",
	"home.quit":     "बाहर निकलें",
	"home.intro":    "%d प्रश्न, %d मिनट। पास होने के लिए %d%% अंक।",

	"settings.title":       "सेटिंग्स",
	"settings.theme":       "थीम",
	"settings.language":    "भाषा",
	"settings.dark":        "डार्क",
	"settings.light":       "लाइट",
	"settings.english":     "English",
	"settings.hindi":       "हिन्दी",
	"settings.save_failed": "सेटिंग्स सहेजी नहीं जा सकीं: %v",

	"difficulty.title":  "अपना स्तर चुनें",
	"difficulty.meta":   "%d प्रश्न • %d मिनट",
	"difficulty.easy":   "आसान",
	"difficulty.medium": "मध्यम",
	"difficulty.hard":   "कठिन",
	"difficulty.failed": "टेस्ट शुरू नहीं हो सका: %v",

	"details.title": "अपना विवरण दर्ज करें",
	"details.name":  "पूरा नाम",
	"details.hint":  "यह नाम आपके प्रमाणपत्र पर दिखाई देगा",
	"details.back":  "स्तर चयन पर वापस जाएँ",
	"details.level": "स्तर: %s",

	"question.counter":  "प्रश्न %d / %d",
	"question.answered": "%d उत्तर दिए",
	"question.previous": "पिछला",
	"question.next":     "अगला",
	"question.finish":   "समाप्त करें",
	"question.sign":     "सड़क चिह्न: %s",
	"question.pick":     "आगे बढ़ने के लिए उत्तर चुनें",
	"question.time":     "शेष समय %s",

	"result.title":          "परीक्षा परिणाम",
	"result.passed":         "परीक्षा उत्तीर्ण!",
	"result.failed":         "परीक्षा अनुत्तीर्ण",
	"result.timed_out":      "समय समाप्त!",
	"result.score":          "अंक",
	"result.grade":          "परिणाम",
	"result.pass_mark":      "उत्तीर्ण अंक",
	"result.band.excellent": "उत्कृष्ट!",
	"result.band.pass":      "उत्तीर्ण",
	"result.band.fail":      "अनुत्तीर्ण",
	"result.excellent":      "आप आरटीओ परीक्षा के लिए पूरी तरह तैयार हैं।",
	"result.pass":           "बहुत अच्छे! थोड़ा और अभ्यास मदद करेगा।",
	"result.fail":           "अभ्यास आवश्यक है। कृपया चिह्नों को फिर से पढ़ें।",
	"result.certificate":    "आपका प्रमाणपत्र",
	"result.download":       "प्रमाणपत्र डाउनलोड करें",
	"result.saved":          "प्रमाणपत्र सहेजा गया: %s",
	"result.export_failed":  "प्रमाणपत्र सहेजा नहीं जा सका: %v",
	"result.review":         "उत्तरों की समीक्षा करें",
	"result.new_test":       "दूसरा टेस्ट दें",

	"review.title":   "उत्तरों की समीक्षा",
	"review.skipped": "उत्तर नहीं दिया",
	"review.back":    "परिणाम पर वापस",
	"review.item":    "%d. %s",

	"key.back":     "वापस",
	"key.quit":     "बाहर",
	"key.navigate": "चलें",
	"key.select":   "चुनें",
	"key.choose":   "विकल्प",
	"key.next":     "अगला",
	"key.previous": "पिछला",
	"key.scroll":   "स्क्रॉल",
	"key.toggle":   "बदलें",
	"key.review":   "समीक्षा",
	"key.new":      "नया टेस्ट",
	"key.download": "डाउनलोड",
	"key.start":    "शुरू",
}
