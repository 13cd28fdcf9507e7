package service

import "mind-journal/internal/domain"

// trustedResources es la tabla estatica de enlaces curados por emocion.
// Nunca se parsea del modelo; emociones sin entrada caen en Neutral.
var trustedResources = map[domain.Emotion][]domain.Resource{
	domain.EmotionJoy: {
		{Title: "Positive Psychology Exercises - Berkeley", URL: "https://ggia.berkeley.edu/"},
		{Title: "The Science of Happiness | Harvard Health", URL: "https://www.health.harvard.edu/mind-and-mood/the-science-of-happiness"},
		{Title: "Mindfulness Meditation Guide - Mindful.org", URL: "https://www.mindful.org/meditation/mindfulness-getting-started/"},
	},
	domain.EmotionSadness: {
		{Title: "Coping with Depression - HelpGuide.org", URL: "https://www.helpguide.org/articles/depression/coping-with-depression.htm"},
		{Title: "Depression Support & Resources - NIMH", URL: "https://www.nimh.nih.gov/health/topics/depression"},
		{Title: "Self-Care Strategies - Mind.org", URL: "https://www.mind.org.uk/information-support/tips-for-everyday-living/self-care/"},
	},
	domain.EmotionAnxiety: {
		{Title: "Anxiety Management Techniques - HelpGuide", URL: "https://www.helpguide.org/articles/anxiety/anxiety-disorders-and-anxiety-attacks.htm"},
		{Title: "Anxiety & Panic - Mayo Clinic", URL: "https://www.mayoclinic.org/diseases-conditions/anxiety/symptoms-causes/syc-20350961"},
		{Title: "Relaxation Techniques - NHS", URL: "https://www.nhs.uk/mental-health/self-help/guides-tools-and-activities/relaxation/"},
	},
	domain.EmotionFear: {
		{Title: "Overcoming Fears - Psychology Today", URL: "https://www.psychologytoday.com/intl/basics/fear"},
		{Title: "Managing Fear & Anxiety - CDC", URL: "https://www.cdc.gov/mentalhealth/managing-fear-anxiety/index.html"},
		{Title: "Coping with Fear - Mind.org", URL: "https://www.mind.org.uk/information-support/types-of-mental-health-problems/anxiety-and-panic-attacks/"},
	},
	domain.EmotionAnger: {
		{Title: "Anger Management - Mayo Clinic", URL: "https://www.mayoclinic.org/healthy-lifestyle/adult-health/in-depth/anger-management/art-20045434"},
		{Title: "Controlling Anger - NHS", URL: "https://www.nhs.uk/mental-health/feelings-symptoms-behaviours/feelings-and-symptoms/anger/"},
		{Title: "Anger Management Strategies - APA", URL: "https://www.apa.org/topics/anger/control"},
	},
	domain.EmotionHope: {
		{Title: "Building Hope - Psychology Today", URL: "https://www.psychologytoday.com/intl/basics/hope"},
		{Title: "Cultivating Hope - VeryWellMind", URL: "https://www.verywellmind.com/cultivating-hope-when-life-seems-hopeless-4157602"},
		{Title: "Hope & Optimism - Berkeley", URL: "https://ggia.berkeley.edu/practice/finding_hope"},
	},
	domain.EmotionNeutral: {
		{Title: "Mental Health Self-Help - NHS", URL: "https://www.nhs.uk/mental-health/self-help/"},
		{Title: "Wellness Resources - HelpGuide", URL: "https://www.helpguide.org/articles/mental-health/building-better-mental-health.htm"},
		{Title: "Self-Care Guide - Mind.org", URL: "https://www.mind.org.uk/information-support/tips-for-everyday-living/wellbeing/"},
	},
	domain.EmotionSurprise: {
		{Title: "Managing Unexpected Changes - HelpGuide", URL: "https://www.helpguide.org/articles/stress/dealing-with-uncertainty.htm"},
		{Title: "Adapting to Change - Mind.org", URL: "https://www.mind.org.uk/information-support/tips-for-everyday-living/managing-change/"},
		{Title: "Coping with Change - VeryWellMind", URL: "https://www.verywellmind.com/coping-with-change-2795735"},
	},
}

// ResourcesFor devuelve los recursos curados de la emocion.
func ResourcesFor(emotion domain.Emotion) []domain.Resource {
	if resources, ok := trustedResources[emotion]; ok {
		return resources
	}
	return trustedResources[domain.EmotionNeutral]
}
