package apisessionv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/prooflines/service"
)

func BuildV1Session(v1 *box.R, s service.Servicer) *box.R {

	sessions := v1.Resource("/sessions").
		WithActions(
			box.Get(listSessions),
			box.Post(createSession),
		)

	v1.Resource("/sessions/{sessionId}").
		WithActions(
			box.Get(getSession),
			box.ActionPost(insertAt),
			box.ActionPost(insertAfter),
			box.ActionPost(markDeleted),
			box.ActionPost(removeNew),
			box.ActionPost(markPersisted),
			box.ActionPost(setField),
			box.ActionPost(find),
			box.ActionPost(encodeFormset).WithName("formset"),
			box.ActionPost(loadFormset).WithName("load"),
			box.ActionPost(deleteSession),
		)

	return sessions
}
