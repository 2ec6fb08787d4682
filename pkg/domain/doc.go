/*
Package domain contains the core vocabulary of the exposure dashboard.

It defines the fixed enumerations (scenarios, escalation states, risk domains),
the record shapes returned to adapters and the sentinel errors raised by the
state engine. The package is kept pure and free of I/O so that the engine, the
catalog and every adapter can share it.

# Key Entities

  - Scenario: one of the pre-scripted incident storylines.
  - State: one of the ordered escalation levels shared by every scenario.
  - Snapshot: the current (scenario, state) pair as reported to callers.
  - TransitionResult: the structured outcome of a write operation.
  - TransitionEvent: what lifecycle hooks receive after a successful write.
*/
package domain
