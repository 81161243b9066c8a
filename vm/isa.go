package vm

// InstructionTable is the sole declarative source for the instruction set:
// one entry per distinct bit pattern. Mnemonic aliases that share an
// existing encoding (LSL/ROL fold onto ADD/ADC Rd,Rd; SBR/CBR fold onto
// ORI/ANDI; the eighteen BRxx branch conditions all fold onto BRBS/BRBC
// with a literal SREG bit index) are not separate entries — they decode
// through the generic form.
//
// Patterns are written as four-character nibble groups concatenated in
// source, matching the grouping used throughout the AVR instruction
// reference, so each group can be checked against the reference by eye.
// The runtime decoder (NewDecoder) builds its dispatch table from this
// slice; nothing else decodes opcodes.
var InstructionTable = []InstructionDescriptor{
	// Arithmetic and logic, full Rd/Rr (register 0-31)
	{Name: "ADD", Pattern: "0000" + "11rd" + "dddd" + "rrrr", Exec: execADD},
	{Name: "ADC", Pattern: "0001" + "11rd" + "dddd" + "rrrr", Exec: execADC},
	{Name: "SUB", Pattern: "0001" + "10rd" + "dddd" + "rrrr", Exec: execSUB},
	{Name: "SBC", Pattern: "0000" + "10rd" + "dddd" + "rrrr", Exec: execSBC},
	{Name: "CP", Pattern: "0001" + "01rd" + "dddd" + "rrrr", Exec: execCP},
	{Name: "CPC", Pattern: "0000" + "01rd" + "dddd" + "rrrr", Exec: execCPC},
	{Name: "CPSE", Pattern: "0001" + "00rd" + "dddd" + "rrrr", Exec: execCPSE},
	{Name: "AND", Pattern: "0010" + "00rd" + "dddd" + "rrrr", Exec: execAND},
	{Name: "OR", Pattern: "0010" + "10rd" + "dddd" + "rrrr", Exec: execOR},
	{Name: "EOR", Pattern: "0010" + "01rd" + "dddd" + "rrrr", Exec: execEOR},
	{Name: "MOV", Pattern: "0010" + "11rd" + "dddd" + "rrrr", Exec: execMOV},
	{Name: "MOVW", Pattern: "0000" + "0001" + "dddd" + "rrrr", Exec: execMOVW},

	// Arithmetic and logic, register 16-31 with 8-bit immediate
	{Name: "SUBI", Pattern: "0101" + "KKKK" + "dddd" + "KKKK", Exec: execSUBI},
	{Name: "SBCI", Pattern: "0100" + "KKKK" + "dddd" + "KKKK", Exec: execSBCI},
	{Name: "CPI", Pattern: "0011" + "KKKK" + "dddd" + "KKKK", Exec: execCPI},
	{Name: "ANDI", Pattern: "0111" + "KKKK" + "dddd" + "KKKK", Exec: execANDI},
	{Name: "ORI", Pattern: "0110" + "KKKK" + "dddd" + "KKKK", Exec: execORI},
	{Name: "LDI", Pattern: "1110" + "KKKK" + "dddd" + "KKKK", Exec: execLDI},

	// Single-operand arithmetic/logic
	{Name: "COM", Pattern: "1001" + "010d" + "dddd" + "0000", Exec: execCOM},
	{Name: "NEG", Pattern: "1001" + "010d" + "dddd" + "0001", Exec: execNEG},
	{Name: "SWAP", Pattern: "1001" + "010d" + "dddd" + "0010", Exec: execSWAP},
	{Name: "INC", Pattern: "1001" + "010d" + "dddd" + "0011", Exec: execINC},
	{Name: "ASR", Pattern: "1001" + "010d" + "dddd" + "0101", Exec: execASR},
	{Name: "LSR", Pattern: "1001" + "010d" + "dddd" + "0110", Exec: execLSR},
	{Name: "ROR", Pattern: "1001" + "010d" + "dddd" + "0111", Exec: execROR},
	{Name: "DEC", Pattern: "1001" + "010d" + "dddd" + "1010", Exec: execDEC},

	// Branches and jumps
	{Name: "RJMP", Pattern: "1100" + "kkkk" + "kkkk" + "kkkk", Exec: execRJMP},
	{Name: "RCALL", Pattern: "1101" + "kkkk" + "kkkk" + "kkkk", Exec: execRCALL},
	{Name: "RET", Pattern: "1001" + "0101" + "0000" + "1000", Exec: execRET},
	{Name: "RETI", Pattern: "1001" + "0101" + "0001" + "1000", Exec: execRETI},
	{Name: "IJMP", Pattern: "1001" + "0100" + "0000" + "1001", Exec: execIJMP},
	{Name: "ICALL", Pattern: "1001" + "0101" + "0000" + "1001", Exec: execICALL},
	{Name: "BRBS", Pattern: "1111" + "00kk" + "kkkk" + "ksss", Exec: execBRBS},
	{Name: "BRBC", Pattern: "1111" + "01kk" + "kkkk" + "ksss", Exec: execBRBC},

	// Bit and I/O-register instructions
	{Name: "SBRC", Pattern: "1111" + "110d" + "dddd" + "0bbb", Exec: execSBRC},
	{Name: "SBRS", Pattern: "1111" + "111d" + "dddd" + "0bbb", Exec: execSBRS},
	{Name: "BLD", Pattern: "1111" + "100d" + "dddd" + "0bbb", Exec: execBLD},
	{Name: "BST", Pattern: "1111" + "101d" + "dddd" + "0bbb", Exec: execBST},
	{Name: "BSET", Pattern: "1001" + "0100" + "0sss" + "1000", Exec: execBSET},
	{Name: "BCLR", Pattern: "1001" + "0100" + "1sss" + "1000", Exec: execBCLR},
	{Name: "SBI", Pattern: "1001" + "1010" + "AAAA" + "Abbb", Exec: execSBI},
	{Name: "CBI", Pattern: "1001" + "1000" + "AAAA" + "Abbb", Exec: execCBI},
	{Name: "SBIC", Pattern: "1001" + "1001" + "AAAA" + "Abbb", Exec: execSBIC},
	{Name: "SBIS", Pattern: "1001" + "1011" + "AAAA" + "Abbb", Exec: execSBIS},
	{Name: "IN", Pattern: "1011" + "0AAd" + "dddd" + "AAAA", Exec: execIN},
	{Name: "OUT", Pattern: "1011" + "1AAr" + "rrrr" + "AAAA", Exec: execOUT},

	// Data transfer: register-indirect through X
	{Name: "LD_X", Pattern: "1001" + "000d" + "dddd" + "1100", Exec: execLD_X},
	{Name: "LD_X+", Pattern: "1001" + "000d" + "dddd" + "1101", Exec: execLD_Xp},
	{Name: "LD_-X", Pattern: "1001" + "000d" + "dddd" + "1110", Exec: execLD_mX},
	{Name: "ST_X", Pattern: "1001" + "001r" + "rrrr" + "1100", Exec: execST_X},
	{Name: "ST_X+", Pattern: "1001" + "001r" + "rrrr" + "1101", Exec: execST_Xp},
	{Name: "ST_-X", Pattern: "1001" + "001r" + "rrrr" + "1110", Exec: execST_mX},

	// Data transfer: register-indirect through Y (plain + post/pre + LDD/STD)
	{Name: "LD_Y", Pattern: "1000" + "000d" + "dddd" + "1000", Exec: execLD_Y},
	{Name: "LD_Y+", Pattern: "1001" + "000d" + "dddd" + "1001", Exec: execLD_Yp},
	{Name: "LD_-Y", Pattern: "1001" + "000d" + "dddd" + "1010", Exec: execLD_mY},
	{Name: "ST_Y", Pattern: "1000" + "001r" + "rrrr" + "1000", Exec: execST_Y},
	{Name: "ST_Y+", Pattern: "1001" + "001r" + "rrrr" + "1001", Exec: execST_Yp},
	{Name: "ST_-Y", Pattern: "1001" + "001r" + "rrrr" + "1010", Exec: execST_mY},
	{Name: "LDD_Y", Pattern: "10q0" + "qq0d" + "dddd" + "1qqq", Exec: execLDD_Y},
	{Name: "STD_Y", Pattern: "10q0" + "qq1r" + "rrrr" + "1qqq", Exec: execSTD_Y},

	// Data transfer: register-indirect through Z (plain + post/pre + LDD/STD + LPM)
	{Name: "LD_Z", Pattern: "1000" + "000d" + "dddd" + "0000", Exec: execLD_Z},
	{Name: "LD_Z+", Pattern: "1001" + "000d" + "dddd" + "0001", Exec: execLD_Zp},
	{Name: "LD_-Z", Pattern: "1001" + "000d" + "dddd" + "0010", Exec: execLD_mZ},
	{Name: "ST_Z", Pattern: "1000" + "001r" + "rrrr" + "0000", Exec: execST_Z},
	{Name: "ST_Z+", Pattern: "1001" + "001r" + "rrrr" + "0001", Exec: execST_Zp},
	{Name: "ST_-Z", Pattern: "1001" + "001r" + "rrrr" + "0010", Exec: execST_mZ},
	{Name: "LDD_Z", Pattern: "10q0" + "qq0d" + "dddd" + "0qqq", Exec: execLDD_Z},
	{Name: "STD_Z", Pattern: "10q0" + "qq1r" + "rrrr" + "0qqq", Exec: execSTD_Z},
	{Name: "LPM", Pattern: "1001" + "0101" + "1100" + "1000", Exec: execLPM},
	{Name: "LPM_Z", Pattern: "1001" + "000d" + "dddd" + "0100", Exec: execLPM_Z},
	{Name: "LPM_Z+", Pattern: "1001" + "000d" + "dddd" + "0101", Exec: execLPM_Zp},

	// Data transfer: direct SRAM address (two-word) and stack
	{Name: "LDS", Pattern: "1001" + "000d" + "dddd" + "0000", TwoWord: true, Exec: execLDS},
	{Name: "STS", Pattern: "1001" + "001r" + "rrrr" + "0000", TwoWord: true, Exec: execSTS},
	{Name: "PUSH", Pattern: "1001" + "001r" + "rrrr" + "1111", Exec: execPUSH},
	{Name: "POP", Pattern: "1001" + "000d" + "dddd" + "1111", Exec: execPOP},

	// Miscellaneous
	{Name: "NOP", Pattern: "0000" + "0000" + "0000" + "0000", Exec: execNOP},
	{Name: "SLEEP", Pattern: "1001" + "0101" + "1000" + "1000", Exec: execSLEEP},
	{Name: "WDR", Pattern: "1001" + "0101" + "1010" + "1000", Exec: execWDR},
	{Name: "BREAK", Pattern: "1001" + "0101" + "1001" + "1000", Exec: execBREAK},
}
