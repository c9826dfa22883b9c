package handler

// Export for testing
type AuthResponseDTO = authResponse
type UserResponse = userResponse
type MessageResponse = messageResponse
type TranslateResponse = translateResponse
type TranslationStatsResponse = translationStatsResponse
type CachedBatchResponse = cachedBatchResponse
type CachedTranslationResponse = cachedTranslationResponse
type ClearConversationResponse = clearConversationResponse

var NewAuthHandlerHelper = NewAuthHandler
var NewMessageHandlerHelper = NewMessageHandler
var NewTranslationHandlerHelper = NewTranslationHandler

var WriteServiceError = writeServiceError

const QuotaExceededMessage = quotaExceededMessage
