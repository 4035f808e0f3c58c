package constvars

const (
	MongoCollectionUsers          = "users"
	MongoCollectionPatients       = "patients"
	MongoCollectionNurses         = "nurses"
	MongoCollectionHealthRecords  = "health_records"
	MongoCollectionNutritionPlans = "nutrition_plans"
	MongoCollectionChatTurns      = "chat_turns"
)
