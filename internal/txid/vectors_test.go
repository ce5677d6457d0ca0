package txid

// taprootScriptPathTx is a version 2 staking transaction spending a taproot
// script path with a large witness.
const taprootScriptPathTx = "0200000000010184f99538d8260d3ce851f4e8ef72e3ecf3ffaaa75c4aa992d810fd6f53e566880000000000ffffffff0140" +
	"514b0000000000225120b3541b7599a2c287504e0ec325d29d24452026dcb4bd159bd0f00a0b3935dfa50c00004004499ffe" +
	"590e9c34e9732abac754822724b4258da24701afe64d604ea38b69cc4729effb2f5fe01e8a04ffbf734e46e47355e457508d" +
	"d09f4c1cac701e1adb8540c048fbfcb6a46defc04bde51b1d016a0b705e5ab864f1e9f9c0485fe79305278891a8d5efce173" +
	"ccfc118be0d10e2b92804779fd1441ecf548fdf883fc100b2a004069758b73364a8b71c197dbac8390b9d97fda5c96a7e14e" +
	"25da9032ef9f3bf0ef02b3ab4f442236cf8111bb16b7777d081809cd154ae415f8b2e3f16656ab44914051f854e756246f63" +
	"90b5764b759f3ef064be8209cedf32580dd576288437327146f55e84f974aab45f22ffa735d928eadc128ef5b061110c8be7" +
	"46ab95e1539e40aaf76b479569902d5c8a35fe338f18bce720995572422c1956bc874533a97ba93fabf158b124d270beca88" +
	"64b196ebef20c0af9205542889ef5b5898ffd88ca640fd19c69ae1a73f6bcb47da17285037a91118d97e181c26f8b161d82b" +
	"1ddbe02ac6483ee9afea19c0306cdfc6f4f59447478f88f604498c93bc0a8839550258a84011d1ebc495637b33e3b734016e" +
	"bde13aba9525d9f313aabeec9df6d982f133f14b18625312ab062a11b03df173ca14546adde8a5c98e9b1de7d2f98fabb572" +
	"fdfd560120c39aac6e759d2e82d5350dfd69193ef227ea4f21ed2ada077283704aea6ebe2fad2023b29f89b45f4af41588dc" +
	"af0ca572ada32872a88224f311373917f1b37d08d1ac204b15848e495a3a62283daaadb3f458a00859fe48e321f0121ebabb" +
	"dd6698f9faba208242640732773249312c47ca7bdb50ca79f15f2ecc32b9c83ceebba44fb74df7ba20cbdd028cfe32c1c1f2" +
	"d84bfec71e19f92df509bba7b8ad31ca6c1a134fe09204ba20d3c79b99ac4d265c2f97ac11e3232c07a598b020cf56c6f055" +
	"472c893c0967aeba20d45c70d28f169e1f0c7f4a78e2bc73497afe585b70aa897955989068f3350aaaba20de13fc96ea6899" +
	"acbdc5db3afaa683f62fe35b60ff6eb723dad28a11d2b12f8cba20e36200aaa8dce9453567bba108bdc51f7f1174b97a65e4" +
	"dc4402fc5de779d41cba20f178fcce82f95c524b53b077e6180bd2d779a9057fdff4255a0af95af918cee0ba569c61c15092" +
	"9b74c1a04954b78b4b6035e97a5e078a5a0f28ec96d547bfee9ace803ac05b9ecb560a91bf97976454326c38279278ade9da" +
	"0e9edfa1fb7c8b79a2d9125f1d687f8380f68791557e10a293c34186848bda711a4f5444204f850ae7c74ce800000000"

const (
	taprootScriptPathTxID  = "afcf6125c26f35741453d26fcaecf133e7b11d9b151385b0c0b2fd4c7a22b633"
	taprootScriptPathWTxID = "b5480b3958731649167f9190f97901c31ece14954ba6ea3d28958248c426f57a"
)

// legacyStakingTx is a pre-segwit transaction with a taproot output and a
// Babylon OP_RETURN output.
const legacyStakingTx = "02000000014cb756e376111111111111111111111111111111111111111111111111111111010000006a4730440220001122" +
	"33445566778899aabbccddeeff00112233445566778899aabbccddeeff022000112233445566778899aabbccddeeff001122" +
	"33445566778899aabbccddeeff012102ababababababababababababababababababababababababababababababababfdff" +
	"ffff0250c3000000000000225120cdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd00000000" +
	"00000000496a4762626e3100aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaabbbbbbbbbbbb" +
	"bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbfa0000000000"

const legacyStakingTxID = "c78b3484c9754690e739cb06bd1819bee95329e7370066dd763a98f93eff4fd6"
