package dashboard

import "breathewatch/internal/aqi"

// guidanceMarkdown holds the extended health guidance shown under the
// gauge, authored as markdown and rendered through goldmark. The short
// advisory line comes from the classifier; this is the long form.
var guidanceMarkdown = map[aqi.Level]string{
	aqi.LevelGood: `**Enjoy the outdoors.** Air quality poses little or no risk today.

- All outdoor activities are fine for everyone.
- Keep windows open for ventilation if you like.`,

	aqi.LevelModerate: `**Generally fine.** Unusually sensitive people should watch for symptoms.

- Consider shortening intense outdoor workouts if you feel irritation.
- No restrictions for the general public.`,

	aqi.LevelSensitive: `**Caution for sensitive groups.** People with heart or lung disease, older adults, and children should reduce prolonged exertion outdoors.

- Wear a fitted mask outdoors if you are in a sensitive group.
- Move long workouts indoors or to cleaner hours.`,

	aqi.LevelUnhealthy: `**Limit time outdoors.** Everyone may begin to experience health effects.

- Wear a fitted mask (N95 or better) outdoors.
- Keep windows closed and run filtration if available.
- Sensitive groups should avoid outdoor exertion entirely.`,

	aqi.LevelVeryUnhealthy: `**Health alert.** The risk of health effects is increased for everyone.

- Avoid outdoor activity; wear a fitted mask for unavoidable trips.
- Keep indoor air filtered and windows sealed.`,

	aqi.LevelHazardous: `**Emergency conditions.** The entire population is likely to be affected.

- Stay indoors with filtered air.
- Wear a high-grade mask for any unavoidable time outside.
- Follow local emergency guidance.`,
}

// GuidanceMarkdown returns the long-form guidance for a level, empty
// when there is no reading
func GuidanceMarkdown(level aqi.Level) string {
	return guidanceMarkdown[level]
}
