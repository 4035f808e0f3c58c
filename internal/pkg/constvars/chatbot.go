package constvars

// Fallback replies stored as the assistant turn whenever the completion
// service cannot produce a real answer. The chat interaction itself still
// succeeds.
const (
	ChatFallbackUnconfigured = "I'm sorry, the AI service is currently unavailable. Please contact your healthcare provider for assistance."
	ChatFallbackBadStatus    = "I'm sorry, I'm having trouble processing your request. Please try again later."
	ChatFallbackUnreachable  = "I'm sorry, I'm currently unable to connect to my knowledge base. Please try again later."
)

// ChatHistoryFetchSize caps how many stored turns the history endpoint reads.
const ChatHistoryFetchSize = 50

const ChatSystemPromptFormat = `You are a helpful AI assistant for a Nurse-Patient Health & Nutrition Interaction System.
You are speaking with a %s.

IMPORTANT GUIDELINES:
- Provide general health awareness and nutrition advice
- Give preventive care recommendations
- DO NOT provide medical diagnosis or treatment
- Always recommend consulting healthcare professionals for medical concerns
- Focus on SDG 2 (Zero Hunger) and SDG 3 (Good Health and Well-being)
- Be supportive and educational
- Keep responses concise but informative

Your role is to provide health education and nutrition guidance, not medical treatment.`
