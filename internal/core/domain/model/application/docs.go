// Package application contains the role-application aggregate and its review
// state machine.
//
// A user applies to become a Driver or Pickup Point operator; the
// application moves pending -> approved | rejected under admin review, and a
// rejected applicant may resubmit, which creates a fresh pending record
// while the rejected one is retained for audit. The state machine is
// role-agnostic; only the payload variant differs between roles.
package application
