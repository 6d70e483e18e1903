package mock

//go:generate go install github.com/golang/mock/mockgen@v1.6.0
//go:generate mockgen -package mock -destination ./message_store.mock.go github.com/zitadel/endsession/pkg/op MessageStore
//go:generate mockgen -package mock -destination ./validator.mock.go github.com/zitadel/endsession/pkg/op EndSessionValidator
//go:generate mockgen -package mock -destination ./client_storage.mock.go github.com/zitadel/endsession/pkg/op ClientStorage
//go:generate mockgen -package mock -destination ./glob.mock.go github.com/zitadel/endsession/pkg/op HasRedirectGlobs
