// Package cloudevents converts pipes messages to and from CloudEvents.
//
// Normal messages map onto events as follows:
//
//	Message.ID       -> id
//	Message.Type     -> type
//	Message.Body     -> data (application/json)
//	Message.Priority -> extension "priority"
//	Message.Header   -> extension "header" (JSON object)
//	subject header   -> subject
//	created_at       -> time
//
// Control messages steer fittings in-process and are never converted.
package cloudevents
