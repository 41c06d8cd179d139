// Package smb provides the remote share client used to enumerate and
// retrieve source documents from a network file share.
//
// Sessions are NTLMv2-authenticated over direct TCP (port 445). Every
// enumeration or retrieval opens its own session and closes it before
// returning; sessions are never pooled or reused across calls, and two
// simultaneous calls open two independent sessions.
//
// # Usage
//
//	client := smb.NewClient()
//	creds := smb.Credentials{User: "svc", Password: "...", Server: "fs01", Dir: "docs/393"}
//
//	for name, err := range client.Find(ctx, creds, smb.FindOptions{}) {
//	    if err != nil {
//	        return err
//	    }
//	    data, err := client.Fetch(ctx, creds, name)
//	    ...
//	}
//
// Per-pattern listing faults are logged and skipped (best effort); session
// establishment and retrieval faults are fatal for the call and never
// retried here. Retry policy, if desired, belongs to the orchestrator.
package smb
