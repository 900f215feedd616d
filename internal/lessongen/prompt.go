package lessongen

import (
	"fmt"
	"strings"

	"github.com/abhisek/kidlingo/internal/cards"
)

const analysisSystemPrompt = `You are an experienced English teacher for a 7-year-old child.
Your job is to analyse the transcript of a lesson and decide which topics the child should practise.
You do NOT create cards here; you only analyse and plan.

Return ONLY JSON in this format, with no comments and no text around it:
{
  "lessonTitle": "Weather, Actions and Colors",
  "lessonDescription": "На уроке мы учили погоду, действия (can/can't) и цвета.",
  "languageLevel": "A1",
  "topics": [
    {
      "topic": "weather",
      "topicName": "Погода",
      "keyWords": ["sunny", "rainy", "cloudy", "windy", "it's"],
      "cardPlan": {"repeat": 2, "translate": 2, "choose": 2, "spelling": 2, "new_words": 2, "writing": 2}
    }
  ]
}

Requirements:
1. Read the transcript carefully and list EVERY topic that is actually covered in it.
2. Do not invent topics that are not in the transcript.
3. For each topic give the key words and phrases that appear in the transcript.
4. For each topic give a cardPlan: how many cards of each type to create. The plan must add up to %d cards per topic.
5. lessonTitle: 2-4 words in English.
6. lessonDescription: 1-3 sentences in Russian describing what the child did in the lesson.
7. languageLevel is one of A0, A1, A2, B1, B2.`

func analysisSystem(cardsPerTopic int) string {
	return fmt.Sprintf(analysisSystemPrompt, cardsPerTopic)
}

func buildAnalysisUserMessage(in Input, maxPrior, cardsPerTopic int) string {
	var b strings.Builder

	b.WriteString("Here is the full transcript of an English lesson:\n\n<TRANSCRIPT>\n")
	b.WriteString(in.Transcript)
	b.WriteString("\n</TRANSCRIPT>\n")

	prior := in.PriorLessons
	if len(prior) > maxPrior {
		prior = prior[:maxPrior]
	}
	if len(prior) > 0 {
		b.WriteString("\nIMPORTANT: the child has already completed these lessons:\n")
		for _, l := range prior {
			b.WriteString(fmt.Sprintf("- %s: topics %s, %d cards\n", l.Title, strings.Join(l.Topics, ", "), l.CardCount))
		}
		b.WriteString("\nReview cards from earlier lessons are added automatically.\n")
		b.WriteString("Plan ONLY the new topics from the current transcript.\n")
	}

	b.WriteString(fmt.Sprintf(`
Analyse the transcript and determine:
1. Which lesson topics the transcript covers.
2. Which key words and phrases belong to each topic.
3. A card plan for each topic (%d cards per topic).

Return only valid JSON with no extra text.`, cardsPerTopic))

	return b.String()
}

const cardsSystemPromptHead = `You are an experienced English teacher for a 7-year-old child.
Your job is to create exercise cards for one lesson topic following a ready-made plan.

Response format (ONLY JSON, no comments):
{
  "cards": [
    {
      "cardType": "repeat",
      "questionText": "It's sunny, it's rainy, it's cloudy",
      "promptText": "Повтори вслух эти фразы о погоде",
      "correctAnswer": null,
      "options": null,
      "iconName": "sun",
      "translationText": null,
      "hintText": null,
      "extraData": {"words": ["it's sunny", "it's rainy", "it's cloudy"]},
      "orderIndex": 0
    },
    {
      "cardType": "translate",
      "questionText": "Как по-английски 'облачно'?",
      "promptText": "Выбери правильный вариант",
      "correctAnswer": "it's cloudy",
      "options": ["it's sunny", "it's cloudy", "it's rainy", "it's snowy"],
      "iconName": "cloud",
      "translationText": "Облачно",
      "hintText": "Подумай о погоде, когда небо покрыто облаками",
      "extraData": {},
      "orderIndex": 1
    }
  ]
}
`

const cardTypesGuide = `Card types:
- "repeat": say words or phrases aloud. extraData.words MUST list the phrases; questionText is the text shown.
- "translate": translate from Russian to English by picking an option.
- "choose": pick the correct option from a list.
- "spelling": build a word from shuffled letters. extraData.scrambledLetters MUST hold the shuffled letters; set iconName, translationText, and correctAnswer to the word.
- "new_words": learn new words on the topic.
- "writing": a written task.
- "speak", "color", "match": speaking, colour recognition and matching tasks.
`

const cardsSystemPromptRules = `Requirements:
1. Create EXACTLY as many cards of each type as the plan says.
2. Use the key words from the transcript.
3. Always set iconName, translationText for cards with correctAnswer, and hintText for cards with options.
4. promptText is in Russian; questionText and options are in English.
5. Level A1, age 7: simple phrases only.`

func cardsSystem() string {
	return cardsSystemPromptHead + "\n" + cardTypesGuide + "\n" + cardsSystemPromptRules
}

func buildCardsUserMessage(topic TopicPlan, transcript string) string {
	var b strings.Builder

	b.WriteString("Create cards for this lesson topic:\n\n")
	b.WriteString(fmt.Sprintf("Topic: %s (%s)\n", topic.Name(), topic.Topic))
	b.WriteString(fmt.Sprintf("Key words from the transcript: %s\n\n", strings.Join(topic.KeyWords, ", ")))

	b.WriteString("Card plan:\n")
	for _, t := range cards.AllTypes {
		if n, ok := topic.CardPlan[string(t)]; ok && n > 0 {
			b.WriteString(fmt.Sprintf("  - %s: %d cards\n", t, n))
		}
	}

	b.WriteString("\nLesson transcript (for context):\n<TRANSCRIPT>\n")
	b.WriteString(transcript)
	b.WriteString("\n</TRANSCRIPT>\n")

	b.WriteString(fmt.Sprintf(`
Create EXACTLY %d cards following the plan. Use the key words from the transcript.
Return only valid JSON with a "cards" array and no extra text.`, topic.Expected()))

	return b.String()
}

const singleStageSystemPrompt = `You are an experienced English teacher for a 7-year-old child.
Turn the transcript of a lesson into a complete interactive lesson in one go.

Return ONLY JSON, no comments and no text around it:
{
  "lessonTitle": "Weather and Colors",
  "lessonDescription": "На уроке мы учили погоду и цвета.",
  "languageLevel": "A1",
  "topics": [
    {
      "topic": "weather",
      "topicName": "Погода",
      "cards": [ { "cardType": "repeat", "questionText": "It's sunny", "promptText": "Повтори вслух", "extraData": {"words": ["it's sunny"]}, "orderIndex": 0 } ]
    }
  ]
}
`

func singleStageSystem(cardsPerTopic int) string {
	return singleStageSystemPrompt + "\n" + cardTypesGuide + fmt.Sprintf(`
Requirements:
1. Cover every topic that is actually in the transcript; do not invent topics.
2. Create about %d cards per topic, mixing card types.
3. promptText is in Russian; questionText and options are in English.
4. lessonTitle: 2-4 words in English. lessonDescription: 1-3 sentences in Russian.
5. Level A1, age 7: simple phrases only.`, cardsPerTopic)
}

func buildSingleStageUserMessage(in Input, maxPrior int) string {
	var b strings.Builder

	b.WriteString("Here is the full transcript of an English lesson:\n\n<TRANSCRIPT>\n")
	b.WriteString(in.Transcript)
	b.WriteString("\n</TRANSCRIPT>\n")

	prior := in.PriorLessons
	if len(prior) > maxPrior {
		prior = prior[:maxPrior]
	}
	if len(prior) > 0 {
		b.WriteString("\nThe child has already completed these lessons (review cards are added automatically, focus on new material):\n")
		for _, l := range prior {
			b.WriteString(fmt.Sprintf("- %s: topics %s, %d cards\n", l.Title, strings.Join(l.Topics, ", "), l.CardCount))
		}
	}

	b.WriteString("\nCreate the lesson. Return only valid JSON with no extra text.")
	return b.String()
}
