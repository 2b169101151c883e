package handshake

import "github.com/retrolink/multiboot"

const (
	serialControlMultiplayConfig uint16 = 0x2103
	serialControlSDBit           uint16 = 0x0008
	serialControlMasterIDBit     uint16 = 0x0004
)

// linkSetup clears the reception-control register, writes the
// master-multiplayer configuration to serial control, then reads it back.
// SD must be set (a link is physically present) and the master-id bit
// must be clear (this console enumerated as the parent); anything else is
// fatal without ever sending a word.
func (a *attempt) linkSetup() error {
	a.h.ctrl.WriteReceptionControl(0)
	a.h.ctrl.WriteSerialControl(serialControlMultiplayConfig)

	status := a.h.ctrl.ReadSerialControl()
	if status&serialControlSDBit == 0 {
		a.h.logger.Warn("no link detected (SD bit clear)")
		return multiboot.CodeBadConnection
	}
	if status&serialControlMasterIDBit != 0 {
		a.h.logger.Warn("this console did not enumerate as parent")
		return multiboot.CodeNotParent
	}
	return nil
}
