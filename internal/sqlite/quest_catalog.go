package sqlite

import "github.com/mesh-intelligence/companion/pkg/types"

// seedQuest is one row of the built-in quest catalog.
type seedQuest struct {
	title        string
	description  string
	reward       int
	timerMinutes int
	mood         types.Mood
}

// questCatalog is inserted once when the store is created: 21 quests per
// mood, each a one or two minute task worth 30 or 40 coins.
var questCatalog = []seedQuest{
	// neutral
	{"Calm Breathing", "Breathe slowly. In through your nose, out through your mouth. Do this 10 times.", 30, 1, types.MoodNeutral},
	{"Sip Water", "Drink a glass of water slowly. Feel the coolness.", 30, 1, types.MoodNeutral},
	{"Three Good Things", "Think of 3 things that went well today. Write them down if you like.", 40, 2, types.MoodNeutral},
	{"Neck Stretch", "Gently tilt your head side to side. Relax your shoulders.", 30, 1, types.MoodNeutral},
	{"Walk Around", "Walk around your room or home slowly. Notice what you see.", 40, 2, types.MoodNeutral},
	{"Tidy Up", "Put away 5 things that are out of place. Take your time.", 40, 2, types.MoodNeutral},
	{"Rest Your Eyes", "Close your eyes. Let them rest. Breathe calmly.", 30, 1, types.MoodNeutral},
	{"Shoulder Rolls", "Roll your shoulders back gently 10 times. Feel the release.", 30, 1, types.MoodNeutral},
	{"Touch Something Soft", "Find something soft like a pillow or blanket. Hold it.", 30, 1, types.MoodNeutral},
	{"Eat Mindfully", "Eat a small snack slowly. Taste each bite.", 40, 2, types.MoodNeutral},
	{"Hand Massage", "Rub your hands together. Massage your fingers gently.", 30, 1, types.MoodNeutral},
	{"Stand Tall", "Stand up straight. Roll your shoulders back. Take a deep breath.", 30, 1, types.MoodNeutral},
	{"Look Outside", "Look out a window. Notice the sky, trees, or buildings.", 40, 2, types.MoodNeutral},
	{"Relax Your Face", "Unclench your jaw. Relax your forehead. Soften your eyes.", 30, 1, types.MoodNeutral},
	{"Warm Drink", "Make tea or warm water. Sip it slowly.", 40, 2, types.MoodNeutral},
	{"Listen to Music", "Play one calm song. Just listen.", 40, 2, types.MoodNeutral},
	{"Draw Freely", "Doodle on paper. Draw whatever comes to mind.", 40, 2, types.MoodNeutral},
	{"Body Check", "Notice where you feel tight. Breathe into that spot.", 40, 2, types.MoodNeutral},
	{"Arm Stretch", "Reach your arms up high. Stretch side to side.", 30, 1, types.MoodNeutral},
	{"One Small Task", "Do one tiny task you have been putting off.", 30, 1, types.MoodNeutral},
	{"Kind Words", "Say something nice to yourself. You deserve it.", 30, 1, types.MoodNeutral},

	// happy
	{"Share Your Joy", "Text someone about something that made you smile today.", 30, 1, types.MoodHappy},
	{"Dance Freely", "Put on a happy song and dance however you want.", 40, 2, types.MoodHappy},
	{"Smile at Yourself", "Look in the mirror and smile at yourself. You are doing great.", 30, 1, types.MoodHappy},
	{"Sing Along", "Sing your favorite song out loud. Be as loud as you want.", 40, 2, types.MoodHappy},
	{"Say Something Nice", "Tell someone something kind. It can be in person or by text.", 30, 1, types.MoodHappy},
	{"Remember Happiness", "Think about a happy memory. Let yourself feel that joy again.", 40, 2, types.MoodHappy},
	{"Watch Something Funny", "Watch a short funny video. Let yourself laugh.", 40, 2, types.MoodHappy},
	{"Celebrate Yourself", "Do a little dance. You have done something good today.", 30, 1, types.MoodHappy},
	{"Fresh Air", "Open a window or step outside. Feel the air on your skin.", 30, 1, types.MoodHappy},
	{"Favorite Song", "Play a song that makes you happy. Sing or hum along.", 40, 2, types.MoodHappy},
	{"Thank Someone", "Tell someone thank you for something they did.", 30, 1, types.MoodHappy},
	{"Move Your Body", "Do 10 jumping jacks or march in place. Feel the energy.", 30, 1, types.MoodHappy},
	{"Write Happiness", "Write one sentence about what made you happy today.", 30, 1, types.MoodHappy},
	{"Look at Cute Animals", "Look at photos or videos of cute animals. Enjoy the cuteness.", 40, 2, types.MoodHappy},
	{"Enjoy a Treat", "Have a small treat you like. Enjoy every bite.", 30, 1, types.MoodHappy},
	{"Do Something Kind", "Do one small kind thing for yourself or someone else.", 40, 2, types.MoodHappy},
	{"Victory Pose", "Stand with your arms up high. Feel strong and proud.", 30, 1, types.MoodHappy},
	{"Call Someone", "Call someone you care about. Say hello.", 40, 2, types.MoodHappy},
	{"Plan Something Fun", "Think about something fun you want to do this week.", 30, 1, types.MoodHappy},
	{"Pat Yourself", "Give yourself a pat on the back. You are doing well.", 30, 1, types.MoodHappy},
	{"Capture Joy", "Take a photo of something that makes you happy right now.", 30, 1, types.MoodHappy},

	// sad
	{"Talk to Someone", "Text or call someone you trust. Tell them how you feel.", 40, 2, types.MoodSad},
	{"Gentle Breathing", "Breathe in slowly for 4 counts. Breathe out slowly for 6 counts. Repeat.", 30, 1, types.MoodSad},
	{"Write It Out", "Write down how you are feeling right now. Do not hold back.", 40, 2, types.MoodSad},
	{"Comforting Song", "Listen to a song that comforts you. Let it soothe you.", 40, 2, types.MoodSad},
	{"Slow Walk", "Walk slowly around your space. Be gentle with yourself.", 40, 2, types.MoodSad},
	{"Hug Yourself", "Wrap your arms around yourself. Give yourself a gentle hug.", 30, 1, types.MoodSad},
	{"Let It Out", "If you need to cry, let yourself cry. It is okay.", 30, 1, types.MoodSad},
	{"Be Kind to You", "Say one kind thing to yourself. You deserve kindness.", 30, 1, types.MoodSad},
	{"Get Cozy", "Wrap yourself in a soft blanket or put on cozy clothes.", 30, 1, types.MoodSad},
	{"Warm Water", "Splash warm water on your face. It can feel soothing.", 30, 1, types.MoodSad},
	{"Look at Memories", "Look at a photo from a happy time. Remember that feeling.", 30, 1, types.MoodSad},
	{"Comfort Food", "Make yourself something warm or comforting to eat.", 40, 2, types.MoodSad},
	{"Soft Music", "Play gentle, quiet music. Let it calm you.", 40, 2, types.MoodSad},
	{"Hold Something Soft", "Hold a pillow, stuffed animal, or soft blanket. Squeeze it gently.", 30, 1, types.MoodSad},
	{"Read Something Kind", "Read a kind quote or message. Let it comfort you.", 30, 1, types.MoodSad},
	{"Safe Spot", "Sit somewhere you feel safe and comfortable. Just be.", 30, 1, types.MoodSad},
	{"Think of Hope", "Think of one thing you can look forward to, even if it is small.", 30, 1, types.MoodSad},
	{"Gentle Stretching", "Do slow, gentle stretches. Be soft with your body.", 40, 2, types.MoodSad},
	{"Reach Out", "Send a message to someone who cares about you.", 30, 1, types.MoodSad},
	{"Pet Comfort", "If you have a pet, spend time with them. Or look at cute animal photos.", 30, 1, types.MoodSad},
	{"Remember Your Strength", "Think about a hard time you got through before. You did it once. You can do it again.", 40, 2, types.MoodSad},

	// angry
	{"Strong Breathing", "Breathe in hard through your nose. Breathe out hard through your mouth. Do this 10 times.", 30, 1, types.MoodAngry},
	{"Move Fast", "Run in place or do fast steps for 1 minute. Let the energy out.", 30, 1, types.MoodAngry},
	{"Hit a Pillow", "Punch or hit a pillow as hard as you need to. It is safe.", 30, 1, types.MoodAngry},
	{"Scream Safely", "Scream into a pillow. Let the sound out.", 30, 1, types.MoodAngry},
	{"Write Your Anger", "Write down exactly why you are angry. Do not hold back.", 40, 2, types.MoodAngry},
	{"Cold Water", "Splash cold water on your face or hands. Feel the shock.", 30, 1, types.MoodAngry},
	{"Count Backwards", "Count backwards from 50. Focus on the numbers.", 30, 1, types.MoodAngry},
	{"Loud Music", "Put on loud, intense music. Let it match your energy.", 40, 2, types.MoodAngry},
	{"Scrub Something", "Scrub a dish, table, or surface hard. Put the energy into cleaning.", 40, 2, types.MoodAngry},
	{"Punch the Air", "Do boxing punches in the air. Imagine hitting your anger.", 30, 1, types.MoodAngry},
	{"Hold Ice", "Hold an ice cube in your hand. Feel the cold.", 30, 1, types.MoodAngry},
	{"Stomp Around", "Stomp your feet hard. Make noise. Let it out.", 30, 1, types.MoodAngry},
	{"Rip Paper", "Rip up old paper or cardboard. Tear it as much as you need.", 30, 1, types.MoodAngry},
	{"Say Why", "Say out loud why you are angry. No one has to hear but you.", 40, 2, types.MoodAngry},
	{"Tighten and Release", "Tighten all your muscles hard. Then let go.", 30, 1, types.MoodAngry},
	{"Step Away", "Walk away from what made you angry. Take a break.", 40, 2, types.MoodAngry},
	{"Picture Calmness", "Picture a calm, peaceful place. Try to feel it.", 40, 2, types.MoodAngry},
	{"Record Yourself", "Record yourself talking about your anger. Delete it after if you want.", 40, 2, types.MoodAngry},
	{"Push-Ups", "Do 10 push-ups or wall push-ups. Use the anger as fuel.", 30, 1, types.MoodAngry},
	{"Plan a Solution", "Write down one thing you can do to fix the problem.", 40, 2, types.MoodAngry},
	{"Jump Around", "Do 10 jumping jacks or jump in place. Move that energy out.", 30, 1, types.MoodAngry},

	// anxious
	{"4-7-8 Breathing", "Breathe in for 4 counts. Hold for 7. Breathe out for 8. Do this 3 times.", 30, 1, types.MoodAnxious},
	{"Name 5 Things", "Name 5 things you can see. 4 you can hear. 3 you can touch. 2 you can smell. 1 you can taste.", 40, 2, types.MoodAnxious},
	{"Write Your Worries", "Write down every worry in your head. Get them all out.", 40, 2, types.MoodAnxious},
	{"Body Check", "Notice where you feel tense. Your jaw? Shoulders? Stomach? Just notice.", 40, 2, types.MoodAnxious},
	{"Calming Sounds", "Listen to rain sounds, ocean waves, or white noise.", 40, 2, types.MoodAnxious},
	{"Name the Anxiety", "Write down what is making you anxious right now.", 40, 2, types.MoodAnxious},
	{"Tense and Relax", "Squeeze your fists tight. Then let go. Do this with your shoulders too.", 40, 2, types.MoodAnxious},
	{"Safe Place", "Picture a place where you feel totally safe. Imagine being there.", 40, 2, types.MoodAnxious},
	{"Sip Warm Tea", "Make warm tea or water with honey. Sip it slowly.", 40, 2, types.MoodAnxious},
	{"Skip Caffeine", "Drink water instead of coffee or soda. Your body will thank you.", 30, 1, types.MoodAnxious},
	{"Remember Coping", "Think of a time you felt anxious before. How did you get through it?", 30, 1, types.MoodAnxious},
	{"Reality Check", "Ask yourself: Is this thought true? What is the evidence?", 40, 2, types.MoodAnxious},
	{"Walk Slowly", "Walk very slowly. Focus on each step. Feel your feet on the ground.", 40, 2, types.MoodAnxious},
	{"Press Your Palms", "Press your palms together hard. Hold for 30 seconds. Feel the pressure.", 30, 1, types.MoodAnxious},
	{"Use Weight", "Put a heavy blanket on you or press down on your legs. Feel grounded.", 30, 1, types.MoodAnxious},
	{"Smell Something", "Smell something calming like lavender, soap, or fresh air.", 30, 1, types.MoodAnxious},
	{"Repeat a Phrase", "Say to yourself: I am safe. I am okay. I can handle this. Repeat 10 times.", 30, 1, types.MoodAnxious},
	{"Color a Shape", "Color in one simple shape or pattern. Focus only on that.", 40, 2, types.MoodAnxious},
	{"One Small Step", "Write down one tiny step you can take to handle your worry.", 40, 2, types.MoodAnxious},
	{"Text Support", "Text someone who supports you. You do not have to explain everything.", 30, 1, types.MoodAnxious},
	{"Count Challenge", "Count backwards from 100 by 7s. Focus only on counting.", 40, 2, types.MoodAnxious},
}
