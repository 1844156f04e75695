package oreum

// Fixed user-facing texts substituted when a model call fails or returns
// nothing usable.
const (
	// ChatFallback replaces a chat reply when the call fails.
	ChatFallback = "네트워크 오류가 발생했습니다. 연결 상태와 설정의 API Key를 확인해주세요."

	// ChatEmptyFallback replaces an empty chat reply.
	ChatEmptyFallback = "죄송해요, 지금은 대답하기 조금 어려워요. 잠시 후 다시 말을 걸어주세요."

	// SentimentFallback replaces journal feedback when the call fails.
	SentimentFallback = "오늘의 기록이 당신에게 힘이 되길 바라요 (API 연결 확인 필요)."

	// SentimentEmptyFallback replaces empty journal feedback.
	SentimentEmptyFallback = "오늘 하루도 수고 많았어요."

	// WelcomeText opens every chat transcript.
	WelcomeText = "안녕하세요. 오늘 기분은 좀 어떠신가요? 억지로 힘낼 필요는 없어요. 그냥 이야기하고 싶은 게 있다면 들어드릴게요."

	// DefaultMood is used when task generation is requested without a mood.
	DefaultMood = "무기력함"
)

// Moods are the choices offered when asking for a new task batch.
// DefaultMood comes first.
var Moods = []string{DefaultMood, "불안함", "평범함", "의욕 조금 있음", "상쾌함"}
