package parameter

import "time"

// InputHoldWindow is how long a control stays held after its last key event
// Terminals report presses and auto-repeat only, never releases
const InputHoldWindow = 250 * time.Millisecond
